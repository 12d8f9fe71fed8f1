package refblast

import "fmt"

// ToolMissingError means a required external executable could not be
// resolved on the PATH. Always fatal; checked before anything runs.
type ToolMissingError struct {
	// Tool is the name of the missing executable
	Tool string

	// Hint is a suggested install command
	Hint string
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf("%s was not found in your PATH. install it with:\n\t%s", e.Tool, e.Hint)
}

// InputMissingError means a required input file does not exist at
// its expected location.
type InputMissingError struct {
	// Path is where the file was expected
	Path string
}

func (e *InputMissingError) Error() string {
	return fmt.Sprintf("required input file is missing, expected it at %s", e.Path)
}

// ExecError wraps a non-zero exit from an external command together
// with whatever the command wrote to stderr.
type ExecError struct {
	// Tool is the executable that failed
	Tool string

	// Output is the command's captured stderr (or combined output)
	Output []byte

	// Err is the underlying exec error
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v: %s", e.Tool, e.Err, string(e.Output))
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
