package usage

import (
	"fmt"
	"strings"
)

// MissingArguments is returned when required positional parameters were
// not supplied. Names are the missing parameters in declaration order.
func MissingArguments(names []string) *Error {
	return &Error{Message: fmt.Sprintf("Expecting argument(s) `%s`", strings.Join(names, "`, `"))}
}

// TooManyArguments is returned when positional tokens exceed the
// declared parameters and no variadic definition exists.
func TooManyArguments(max, got int) *Error {
	return &Error{Message: fmt.Sprintf("Expecting %d parameter(s) at most but got %d instead", max, got)}
}

// MissingVariadic is returned when a required variadic parameter
// collected no tokens.
func MissingVariadic(name string) *Error {
	return &Error{Message: fmt.Sprintf("Expecting at least one element for variadic parameters `%s`", name)}
}
