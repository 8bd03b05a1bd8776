package domain

import "time"

// BuildInfo records the last output a build task produced.
type BuildInfo struct {
	TaskName   string    `json:"task_name,omitzero"`
	OutputFile string    `json:"output_file,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
