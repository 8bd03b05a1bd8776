package ports

// LineWriter writes generated text files line by line.
//
// Writers open their target in append mode and write whole lines in a single call, so
// several uncoordinated writers can target the same file without corrupting each other's lines.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type LineWriter interface {
	// AppendLines appends each line, newline terminated, creating the file and its
	// parent directories when missing.
	AppendLines(path string, lines []string) error

	// Reset removes the file so the next append starts from an empty file.
	// A missing file is not an error.
	Reset(path string) error
}
