package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/postfmt/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"no markers", "plain text", false},
		{"balanced bold", "*a* and **b**", false},
		{"balanced italic", "_a_ __b__", false},
		{"three asterisks", "*a*b*", true},
		{"single underscore", "snake_case", true},
		{"bullet asterisks ignored", "* one\n* two", false},
		{"bullet plus emphasis", "* *one*\n* two", false},
		{"odd with bullets", "* one *two", true},
		{"bullet with trailing star", "* item with star*", true},
		{"bullet with balanced stars", "* item *with* star", false},
		{"indented bullet with trailing star", "x\n  * item*", true},
		{"empty", "", false},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrUnbalancedMarkers))
			assert.False(t, errors.Is(err, core.ErrInternal))

			var fe *core.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "Unmatched formatting markers found", fe.UserMessage())
		})
	}
}

func TestCount(t *testing.T) {
	bold, italic := Count("**a** _b_\n* item")
	assert.Equal(t, 4, bold)
	assert.Equal(t, 2, italic)

	bold, _ = Count("x\n  * item")
	assert.Equal(t, 0, bold)

	bold, _ = Count("* item with star*")
	assert.Equal(t, 1, bold)

	// A "* " in the middle of a line is an emphasis marker.
	bold, _ = Count("a * b")
	assert.Equal(t, 1, bold)
}
