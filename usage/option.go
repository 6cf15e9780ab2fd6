package usage

import (
	"fmt"
	"strings"
)

// UnknownOption is returned when a long option name is not declared in
// the schema.
func UnknownOption(name string) *Error {
	return &Error{Message: fmt.Sprintf("Unknown option `%s`", name)}
}

// UnknownFlag is returned when a flag character in a cluster is not
// bound to any option.
func UnknownFlag(flag byte) *Error {
	return &Error{Message: fmt.Sprintf("Unknown option flag \"%c\"", flag)}
}

// ExpectingValue is returned when an option's value token is missing.
func ExpectingValue(name string) *Error {
	return &Error{Message: fmt.Sprintf("Expecting value for option `%s`", name)}
}

// ValueIsOption is returned when the token in an option's value slot
// itself looks like an option or toggle.
func ValueIsOption(token, name string) *Error {
	return &Error{Message: fmt.Sprintf("Expecting a value instead of an option or toggle \"%s\" for option `%s`", token, name)}
}

// NonTrailingValueFlag is returned when a non-toggle flag appears
// before the end of a flag cluster.
func NonTrailingValueFlag() *Error {
	return &Error{Message: "Only the last flag in a sequence can refer to an option instead of a toggle"}
}

// MissingOptions is returned when required options were never
// satisfied. Names are in declaration order.
func MissingOptions(names []string) *Error {
	return &Error{Message: fmt.Sprintf("Missing required option(s) `%s`", strings.Join(names, "`, `"))}
}
