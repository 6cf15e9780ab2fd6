// Package parse turns raw command-line tokens into typed values
// according to a schema. It receives an already-resolved schema and the
// tokens remaining after command-path resolution; dispatch and help
// rendering belong to the caller.
package parse

import (
	"fmt"

	"github.com/vilic/clime/schema"
	"github.com/vilic/clime/typecast"
	"github.com/vilic/clime/usage"
)

// Result is the outcome of a successful parse.
type Result struct {
	// Args holds one value per ParamDefinition in declaration order;
	// trailing entries may come from defaults.
	Args []any
	// Extra holds positional tokens beyond the fixed parameters, cast
	// with the variadic definition's type when one exists.
	Extra []any
	// Options maps option names to values. Toggles that never appeared
	// are false; options with declared defaults start at those.
	Options map[string]any
	// Context is the read-only context the parse ran under.
	Context typecast.Context
	// HelpRequested is set when a help token was encountered. The rest
	// of the token sequence is discarded and no validation runs.
	HelpRequested bool
}

// Parser holds read-only lookup structures derived from a schema. A
// parser is safe for concurrent use: every Parse call allocates its own
// mutable state.
type Parser struct {
	schema  *schema.Schema
	help    usage.HelpProvider
	options map[string]*schema.OptionDefinition
	flags   map[byte]*schema.OptionDefinition
}

// New builds a parser for s. help may be nil; when set it is attached
// to every usage error so callers can render usage text for the failed
// command.
//
// New fails when the schema itself is malformed: a required-parameter
// count out of range, an optional positional parameter without a
// default, a duplicate option name, a flag that is not exactly one
// character, or a flag bound to more than one option. These are
// programming errors in the schema, not usage errors.
func New(s *schema.Schema, help usage.HelpProvider) (*Parser, error) {
	if s.RequiredParams < 0 || s.RequiredParams > len(s.Params) {
		return nil, fmt.Errorf("required parameter count %d out of range for %d parameter(s)",
			s.RequiredParams, len(s.Params))
	}

	for _, def := range s.Params[s.RequiredParams:] {
		if def.Default == nil {
			return nil, fmt.Errorf("optional parameter `%s` must declare a default", def.Name)
		}
	}

	options := make(map[string]*schema.OptionDefinition, len(s.Options))
	flags := make(map[byte]*schema.OptionDefinition)

	for i := range s.Options {
		opt := &s.Options[i]

		if _, ok := options[opt.Name]; ok {
			return nil, fmt.Errorf("duplicate option `%s`", opt.Name)
		}
		options[opt.Name] = opt

		if opt.Flag == "" {
			continue
		}
		if len(opt.Flag) != 1 {
			return nil, fmt.Errorf("option `%s`: flag %q must be a single character", opt.Name, opt.Flag)
		}
		c := opt.Flag[0]
		if prev, ok := flags[c]; ok {
			return nil, fmt.Errorf("flag %q is bound to both `%s` and `%s`", opt.Flag, prev.Name, opt.Name)
		}
		flags[c] = opt
	}

	return &Parser{
		schema:  s,
		help:    help,
		options: options,
		flags:   flags,
	}, nil
}

// fail attaches the parser's help provider to a usage error.
func (p *Parser) fail(err *usage.Error) error {
	err.Help = p.help
	return err
}
