// Package schema defines the static description of a command's
// positional parameters and named options. A schema is built once per
// command by the command-resolution layer and stays read-only for the
// lifetime of any parser constructed from it.
package schema

import "github.com/vilic/clime/typecast"

// ParamDefinition describes one fixed positional parameter. Position in
// the schema's Params slice is significant: tokens fill definitions in
// declaration order.
type ParamDefinition struct {
	Name    string
	Type    typecast.Type
	Default any
}

// ParamsDefinition describes a trailing variadic parameter that
// collects positional tokens once every fixed parameter is filled.
// A schema holds at most one.
type ParamsDefinition struct {
	Name     string
	Type     typecast.Type
	Required bool
	Default  any
}

// OptionDefinition describes a named option. Name is the canonical long
// form ("--name"); Flag, when set, is a single-character shortcut
// combinable with other flags in one cluster ("-ab"). Toggle options
// take no value token and default to false.
type OptionDefinition struct {
	Name     string
	Flag     string
	Type     typecast.Type
	Required bool
	Toggle   bool
	Default  any
}

// Schema is the full description a parser is built from.
//
// RequiredParams counts the leading Params entries that must be
// supplied on the command line; every entry past that prefix must
// declare a default.
type Schema struct {
	Params         []ParamDefinition
	RequiredParams int
	Variadic       *ParamsDefinition
	Options        []OptionDefinition
}
