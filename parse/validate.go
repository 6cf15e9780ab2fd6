package parse

import "github.com/vilic/clime/usage"

// finalize runs the post-consumption checks in their fixed order and
// fills positional defaults. Any failure is terminal: later checks do
// not run and no partial result is returned.
func (p *Parser) finalize(st *parseState) (*Result, error) {
	s := p.schema
	res := st.result

	// 1. Required positionals.
	if len(res.Args) < s.RequiredParams {
		names := make([]string, 0, s.RequiredParams-len(res.Args))
		for _, def := range s.Params[len(res.Args):s.RequiredParams] {
			names = append(names, def.Name)
		}
		return nil, p.fail(usage.MissingArguments(names))
	}

	// 2. Required options, reported in declaration order.
	if len(st.pending) > 0 {
		names := make([]string, 0, len(st.pending))
		for _, opt := range s.Options {
			if st.pending[opt.Name] {
				names = append(names, opt.Name)
			}
		}
		return nil, p.fail(usage.MissingOptions(names))
	}

	// 3. Fill defaults for unconsumed positionals.
	for _, def := range s.Params[len(res.Args):] {
		res.Args = append(res.Args, def.Default)
	}

	// 4. Excess positionals without a variadic definition.
	if len(res.Extra) > 0 && s.Variadic == nil {
		return nil, p.fail(usage.TooManyArguments(len(s.Params), len(s.Params)+len(res.Extra)))
	}

	// 5. Required variadic collected nothing.
	if s.Variadic != nil && s.Variadic.Required && len(res.Extra) == 0 {
		return nil, p.fail(usage.MissingVariadic(s.Variadic.Name))
	}

	return res, nil
}
