package main

import (
	"strings"
	"testing"

	"github.com/vilic/clime/parse"
	"github.com/vilic/clime/typecast"
)

func TestGreetSchemaIsValid(t *testing.T) {
	if _, err := parse.New(greetSchema(), nil); err != nil {
		t.Fatalf("greetSchema() is malformed: %v", err)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "plain",
			tokens: []string{"world"},
			want:   "Hello, world!\n",
		},
		{
			name:   "loud with extras",
			tokens: []string{"ada", "grace", "-l"},
			want:   "HELLO, ADA, GRACE!\n",
		},
		{
			name:   "repeated in spanish",
			tokens: []string{"mundo", "--lang", "es", "-t", "2"},
			want:   "Hola, mundo!\nHola, mundo!\n",
		},
	}

	parser, err := parse.New(greetSchema(), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.Parse(tt.tokens, typecast.Context{})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := render(res); got != tt.want {
				t.Errorf("render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandHelpText(t *testing.T) {
	s := greetSchema()
	help := &commandHelp{name: "greet", schema: s, descriptions: optionDescriptions}

	text := help.HelpText()

	for _, want := range []string{
		"USAGE",
		"greet <name> [...others]",
		"OPTIONS",
		"-l, --loud",
		"-t, --times",
		"--lang",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("HelpText() missing %q in:\n%s", want, text)
		}
	}
}
