package error

import (
	"os"
	"strconv"
	"strings"
)

// SpecError is an error detected in a grammar description. It carries enough
// positional information to point the user at the offending line.
type SpecError struct {
	Cause      error
	FilePath   string
	SourceName string
	Row        int
}

// Error renders the error as "source: row: error: cause", omitting the parts
// that are unset, followed by the offending source line when it can be read
// back.
func (e *SpecError) Error() string {
	parts := make([]string, 0, 3)
	if e.SourceName != "" {
		parts = append(parts, e.SourceName)
	}
	if e.Row != 0 {
		parts = append(parts, strconv.Itoa(e.Row))
	}
	parts = append(parts, "error: "+e.Cause.Error())

	msg := strings.Join(parts, ": ")
	if line := sourceLine(e.FilePath, e.Row); line != "" {
		msg += "\n    " + line
	}
	return msg
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

type SpecErrors []*SpecError

func (e SpecErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// sourceLine returns line row (1-based) of the file at path, or "" when the
// file cannot be read or the row is out of range.
func sourceLine(path string, row int) string {
	if path == "" || row <= 0 {
		return ""
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	lines := strings.Split(string(src), "\n")
	if row > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[row-1], "\r")
}
