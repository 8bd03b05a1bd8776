package domain

// Process describes a child process to start.
type Process struct {
	// Args holds the command name followed by its arguments.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env holds "KEY=VALUE" entries overriding the inherited environment.
	Env []string
}
