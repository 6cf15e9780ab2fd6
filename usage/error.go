// Package usage defines the terminal error raised when command-line
// input does not satisfy a schema.
package usage

// HelpProvider renders usage text for the command whose parse failed.
// The parser never formats help itself; it only carries the reference
// so callers can decide how to present it.
type HelpProvider interface {
	HelpText() string
}

// Error is the single user-facing error kind produced during parsing.
// Callers are expected to print Message followed by the provider's help
// text and exit with a non-zero status.
type Error struct {
	Message string
	Help    HelpProvider
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
