package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatHitCountIndicator(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected string
	}{
		{"zero hits", 0, ""},
		{"negative count", -1, ""},
		{"one hit", 1, "1×"},
		{"few hits", 3, "3×"},
		{"many hits", 99, "99×"},
		{"lots of hits", 999, "999×"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatHitCountIndicator(tt.count)
			require.Equal(t, tt.expected, got, "FormatHitCountIndicator(%d)", tt.count)
		})
	}
}
