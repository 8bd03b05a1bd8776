// Package build holds build-time information.
package build

// Build information, overwritten by linker flags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
