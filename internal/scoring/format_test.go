package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatListField(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "N/A"},
		{name: "string slice", value: []string{"Go", "SQL"}, want: "Go, SQL"},
		{name: "empty string slice", value: []string{}, want: "N/A"},
		{name: "any slice from decoded JSON", value: []any{"Go", "SQL"}, want: "Go, SQL"},
		{name: "delimited string", value: "Python, ,Go,", want: "Python, Go"},
		{name: "single value string", value: "Python", want: "Python"},
		{name: "empty string", value: "", want: "N/A"},
		{name: "commas only", value: ",,,", want: "N/A"},
		{name: "numeric value stringified", value: 3, want: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatListField(tt.value))
		})
	}
}

func TestFormatListFieldIdempotent(t *testing.T) {
	inputs := []any{
		[]string{"Go", "SQL", "Docker"},
		"Python, ,Go,",
		nil,
		"",
	}

	for _, input := range inputs {
		once := FormatListField(input)
		assert.Equal(t, once, FormatListField(once))
	}
}
