package spec

import "fmt"

// SyntaxError is an error in a grammar description. Row points at the line
// the error was detected on.
type SyntaxError struct {
	row     int
	message string
}

func (e *SyntaxError) Error() string {
	return e.message
}

func (e *SyntaxError) Row() int {
	return e.row
}

func newSyntaxError(row int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		row:     row,
		message: fmt.Sprintf(format, args...),
	}
}
