// Command greet is a minimal example of wiring the parser into a
// binary: it declares a schema, parses os.Args against it, and renders
// usage errors followed by help text the way the parser's callers are
// expected to.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vilic/clime/parse"
	"github.com/vilic/clime/schema"
	"github.com/vilic/clime/typecast"
	"github.com/vilic/clime/usage"
)

func main() {
	s := greetSchema()
	help := &commandHelp{name: "greet", schema: s, descriptions: optionDescriptions}

	parser, err := parse.New(s, help)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	wd, _ := os.Getwd()
	ctx := typecast.Context{WorkingDirectory: wd, CommandPath: []string{"greet"}}

	res, err := parser.Parse(os.Args[1:], ctx)
	if err != nil {
		if ue, ok := err.(*usage.Error); ok {
			fmt.Fprintln(os.Stderr, styleError(ue.Error()))
			if ue.Help != nil {
				fmt.Fprintln(os.Stderr)
				fmt.Fprintln(os.Stderr, ue.Help.HelpText())
			}
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if res.HelpRequested {
		fmt.Println(help.HelpText())
		return
	}

	fmt.Print(render(res))
}

var optionDescriptions = map[string]string{
	"loud":  "Shout the greeting",
	"times": "Repeat the greeting",
	"lang":  "Greeting language (en, es)",
}

func greetSchema() *schema.Schema {
	return &schema.Schema{
		Params: []schema.ParamDefinition{
			{Name: "name", Type: typecast.String},
		},
		RequiredParams: 1,
		Variadic: &schema.ParamsDefinition{
			Name: "others",
			Type: typecast.String,
		},
		Options: []schema.OptionDefinition{
			{Name: "loud", Flag: "l", Toggle: true},
			{Name: "times", Flag: "t", Type: typecast.Number, Default: float64(1)},
			{Name: "lang", Type: typecast.String, Default: "en"},
		},
	}
}

func render(res *parse.Result) string {
	names := []string{res.Args[0].(string)}
	for _, extra := range res.Extra {
		names = append(names, extra.(string))
	}

	greeting := "Hello"
	if res.Options["lang"] == "es" {
		greeting = "Hola"
	}

	line := fmt.Sprintf("%s, %s!", greeting, strings.Join(names, ", "))
	if res.Options["loud"].(bool) {
		line = strings.ToUpper(line)
	}

	times := int(res.Options["times"].(float64))
	var out strings.Builder
	for i := 0; i < times; i++ {
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.String()
}

// commandHelp renders usage text for one command. It is the help
// collaborator referenced by usage errors.
type commandHelp struct {
	name         string
	schema       *schema.Schema
	descriptions map[string]string
}

func (h *commandHelp) HelpText() string {
	var b strings.Builder

	b.WriteString("USAGE\n   ")
	b.WriteString(h.name)
	for i, def := range h.schema.Params {
		if i < h.schema.RequiredParams {
			fmt.Fprintf(&b, " <%s>", def.Name)
		} else {
			fmt.Fprintf(&b, " [%s]", def.Name)
		}
	}
	if v := h.schema.Variadic; v != nil {
		fmt.Fprintf(&b, " [...%s]", v.Name)
	}
	b.WriteString("\n")

	if len(h.schema.Options) > 0 {
		b.WriteString("\nOPTIONS\n")
		for _, opt := range h.schema.Options {
			names := "--" + opt.Name
			if opt.Flag != "" {
				names = "-" + opt.Flag + ", " + names
			}
			fmt.Fprintf(&b, "   %-16s %s\n", names, h.descriptions[opt.Name])
		}
	}

	return b.String()
}

// styleError colors the message when stderr is a terminal and NO_COLOR
// is unset, following the usual convention.
func styleError(text string) string {
	if !term.IsTerminal(int(os.Stderr.Fd())) || os.Getenv("NO_COLOR") != "" {
		return text
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
	return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(text)
}
