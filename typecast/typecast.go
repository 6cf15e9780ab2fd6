// Package typecast converts raw command-line tokens into typed values.
//
// Casting is deliberately permissive and never fails a parse: a numeric
// token that does not parse becomes NaN, and an unrecognized boolean
// token coerces to true. Callers that need stricter semantics should
// declare a Custom type and enforce their own rules.
package typecast

import (
	"math"
	"strconv"
	"strings"
)

// Context carries read-only information about the current invocation
// into custom cast functions. It must not be mutated during a parse.
type Context struct {
	// WorkingDirectory is the directory the command was invoked from.
	WorkingDirectory string
	// CommandPath is the sequence of command-name tokens that selected
	// the command whose arguments are being parsed.
	CommandPath []string
}

// CastFunc converts a raw token into an arbitrary value. It must not
// fail; unparsable input maps to whatever sentinel the type defines.
type CastFunc func(token string, ctx Context) any

type kind int

const (
	kindString kind = iota
	kindNumber
	kindBoolean
	kindCustom
)

// Type is a tagged descriptor for the value a token should become.
// The zero value behaves like String.
type Type struct {
	kind kind
	cast CastFunc
}

var (
	// String leaves the token unchanged.
	String = Type{kind: kindString}
	// Number coerces the token to a float64, NaN when it does not parse.
	Number = Type{kind: kindNumber}
	// Boolean coerces the token to a bool; see Cast for the rules.
	Boolean = Type{kind: kindBoolean}
)

// Custom returns a Type backed by fn. A nil fn yields nil values.
func Custom(fn CastFunc) Type {
	return Type{kind: kindCustom, cast: fn}
}

// Cast converts token according to the descriptor:
//
//   - String: the token itself.
//   - Number: float64 from the token, NaN when parsing fails.
//   - Boolean: "false" in any case is false; a token that parses as a
//     real number is true iff nonzero; anything else is true.
//   - Custom: whatever the cast function returns.
func (t Type) Cast(token string, ctx Context) any {
	switch t.kind {
	case kindString:
		return token
	case kindNumber:
		return coerceNumber(token)
	case kindBoolean:
		return coerceBoolean(token)
	case kindCustom:
		if t.cast == nil {
			return nil
		}
		return t.cast(token, ctx)
	}
	return nil
}

func coerceNumber(token string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// coerceBoolean keeps the historical fallback: a token that fails
// numeric coercion (or coerces to NaN) is true, not an error.
func coerceBoolean(token string) bool {
	if strings.EqualFold(token, "false") {
		return false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil || math.IsNaN(n) {
		return true
	}
	return n != 0
}
