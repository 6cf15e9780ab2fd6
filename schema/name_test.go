package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "single word", in: "foo", want: true},
		{name: "hyphenated", in: "foo-bar", want: true},
		{name: "multiple segments", in: "foo-bar-baz", want: true},
		{name: "digits and underscore", in: "foo2_baz", want: true},
		{name: "single character", in: "x", want: true},
		{name: "digits only", in: "2048", want: true},
		{name: "underscore only", in: "_", want: true},
		{name: "empty", in: "", want: false},
		{name: "leading hyphen", in: "-foo", want: false},
		{name: "trailing hyphen", in: "foo-", want: false},
		{name: "double hyphen", in: "foo--bar", want: false},
		{name: "hyphen only", in: "-", want: false},
		{name: "punctuation", in: "fo!o", want: false},
		{name: "space", in: "foo bar", want: false},
		{name: "non-ascii", in: "café", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidName(tt.in))
		})
	}
}
