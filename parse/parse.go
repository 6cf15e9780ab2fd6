package parse

import (
	"strings"

	"github.com/vilic/clime/schema"
	"github.com/vilic/clime/typecast"
	"github.com/vilic/clime/usage"
)

// parseState is the per-call mutable state threaded through token
// consumption. It is created fresh by every Parse invocation so that
// repeated or concurrent calls on one parser never interfere.
type parseState struct {
	result *Result
	// pending tracks required options not yet satisfied.
	pending map[string]bool
}

func (p *Parser) newState(ctx typecast.Context) *parseState {
	options := make(map[string]any, len(p.schema.Options))
	pending := make(map[string]bool)

	for _, opt := range p.schema.Options {
		if opt.Toggle {
			options[opt.Name] = false
		} else if opt.Default != nil {
			options[opt.Name] = opt.Default
		}
		if opt.Required {
			pending[opt.Name] = true
		}
	}

	return &parseState{
		result: &Result{
			Options: options,
			Context: ctx,
		},
		pending: pending,
	}
}

// Parse consumes tokens against the schema and returns a Result, or a
// *usage.Error describing the first failure. Classification per token,
// in priority order: help request, long option ("--"), flag cluster
// ("-"), positional value.
func (p *Parser) Parse(tokens []string, ctx typecast.Context) (*Result, error) {
	st := p.newState(ctx)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		// A help request short-circuits everything, including
		// validation of whatever has been consumed so far.
		if isHelpToken(tok) {
			st.result.HelpRequested = true
			return st.result, nil
		}

		var err error
		switch {
		case strings.HasPrefix(tok, "--"):
			i, err = p.consumeOption(st, tokens, i)
		case strings.HasPrefix(tok, "-"):
			i, err = p.consumeFlags(st, tokens, i)
		default:
			p.consumeArg(st, tok)
		}
		if err != nil {
			return nil, err
		}
	}

	return p.finalize(st)
}

func isHelpToken(tok string) bool {
	return tok == "-h" || tok == "-?" || tok == "--help"
}

// consumeOption handles a "--name" token at index i. It returns the
// index of the last token consumed.
func (p *Parser) consumeOption(st *parseState, tokens []string, i int) (int, error) {
	name := strings.TrimPrefix(tokens[i], "--")

	opt, ok := p.options[name]
	if !ok {
		return i, p.fail(usage.UnknownOption(name))
	}

	delete(st.pending, opt.Name)

	if opt.Toggle {
		st.result.Options[opt.Name] = true
		return i, nil
	}
	return p.consumeValue(st, tokens, i, opt)
}

// consumeFlags handles a "-abc" flag cluster at index i, left to right.
// A non-toggle flag must be the last character of the cluster and takes
// the following token as its value.
func (p *Parser) consumeFlags(st *parseState, tokens []string, i int) (int, error) {
	cluster := tokens[i][1:]

	for j := 0; j < len(cluster); j++ {
		opt, ok := p.flags[cluster[j]]
		if !ok {
			return i, p.fail(usage.UnknownFlag(cluster[j]))
		}

		delete(st.pending, opt.Name)

		if opt.Toggle {
			st.result.Options[opt.Name] = true
			continue
		}
		if j != len(cluster)-1 {
			return i, p.fail(usage.NonTrailingValueFlag())
		}
		return p.consumeValue(st, tokens, i, opt)
	}

	return i, nil
}

// consumeValue takes the token after index i as the value for opt.
func (p *Parser) consumeValue(st *parseState, tokens []string, i int, opt *schema.OptionDefinition) (int, error) {
	i++
	if i >= len(tokens) {
		return i, p.fail(usage.ExpectingValue(opt.Name))
	}

	value := tokens[i]
	if strings.HasPrefix(value, "-") {
		return i, p.fail(usage.ValueIsOption(value, opt.Name))
	}

	st.result.Options[opt.Name] = opt.Type.Cast(value, st.result.Context)
	return i, nil
}

// consumeArg appends a positional token: to the next unfilled parameter
// if one remains, otherwise to the extras. Extras are cast with the
// variadic type when a variadic definition exists and kept as raw
// strings otherwise.
func (p *Parser) consumeArg(st *parseState, tok string) {
	params := p.schema.Params

	if n := len(st.result.Args); n < len(params) {
		st.result.Args = append(st.result.Args, params[n].Type.Cast(tok, st.result.Context))
		return
	}

	if v := p.schema.Variadic; v != nil {
		st.result.Extra = append(st.result.Extra, v.Type.Cast(tok, st.result.Context))
		return
	}
	st.result.Extra = append(st.result.Extra, tok)
}
