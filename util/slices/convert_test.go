package slices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceStrings(t *testing.T) {
	tests := []struct {
		name   string
		input  []interface{}
		expect []string
	}{
		{
			name:   "strings pass through",
			input:  []interface{}{"a", "b"},
			expect: []string{"a", "b"},
		},
		{
			name:   "numbers",
			input:  []interface{}{float64(1), float64(2.5)},
			expect: []string{"1", "2.5"},
		},
		{
			name:   "booleans",
			input:  []interface{}{true, false},
			expect: []string{"true", "false"},
		},
		{
			name:   "nil becomes empty",
			input:  []interface{}{nil},
			expect: []string{""},
		},
		{
			name:   "nested array stays JSON",
			input:  []interface{}{[]interface{}{"x"}},
			expect: []string{`["x"]`},
		},
		{
			name:   "empty",
			input:  nil,
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, CoerceStrings(tt.input))
		})
	}
}
