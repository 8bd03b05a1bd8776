package ports

import (
	"context"
	"io"

	"github.com/palantir/gradle-plugin-testing/internal/core/domain"
)

// Executor defines the interface for running child processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the process and streams its output to stdout and stderr.
	//
	// The process environment is the current environment overlaid with proc.Env,
	// which contains "KEY=VALUE" entries.
	//
	// It returns an error if the process cannot be started or exits unsuccessfully.
	Execute(ctx context.Context, proc *domain.Process, stdout, stderr io.Writer) error
}
