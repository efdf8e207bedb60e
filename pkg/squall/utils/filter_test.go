package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringFilter(t *testing.T) {
	t.Run("empty filter matches anything", func(t *testing.T) {
		filter := NewStringFilterFromSlice(nil)

		require.True(t, filter.Match("anything"))
		require.True(t, filter.MatchAny([]string{"a", "b"}))
	})

	t.Run("strict empty filter matches nothing", func(t *testing.T) {
		filter := NewStringFilterFromSlice(nil)
		filter.SetStrict()

		require.False(t, filter.Match("anything"))
		require.False(t, filter.MatchAny([]string{"a", "b"}))
	})

	t.Run("matches listed items only", func(t *testing.T) {
		filter := NewStringFilterFromSlice([]string{"math", "strings"})

		require.True(t, filter.Match("math"))
		require.False(t, filter.Match("showcase"))
		require.True(t, filter.MatchAny([]string{"showcase", "strings"}))
		require.False(t, filter.MatchAny([]string{"showcase"}))
	})
}
