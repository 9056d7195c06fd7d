package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Run("merges cities into existing set", func(t *testing.T) {
		got := Merge("beijing,shanghai", []string{"chengdu", "beijing"})
		assert.Equal(t, "beijing,chengdu,shanghai", got)
	})

	t.Run("empty existing set", func(t *testing.T) {
		got := Merge("", []string{"beijing"})
		assert.Equal(t, "beijing", got)
	})

	t.Run("single element carries no comma", func(t *testing.T) {
		got := Merge("beijing", nil)
		assert.Equal(t, "beijing", got)
		assert.NotContains(t, got, ",")
	})

	t.Run("drops null and None tokens", func(t *testing.T) {
		got := Merge("null,beijing", []string{"None", "", "shanghai"})
		assert.Equal(t, "beijing,shanghai", got)
	})

	t.Run("parses JSON array form", func(t *testing.T) {
		got := Merge(`["shanghai","beijing"]`, []string{"chengdu"})
		assert.Equal(t, "beijing,chengdu,shanghai", got)
	})

	t.Run("malformed JSON falls back to comma split", func(t *testing.T) {
		got := Merge(`["shanghai",`, []string{"beijing"})
		// The broken-array tokens survive as raw strings, minus the junk.
		assert.Contains(t, got, "beijing")
	})

	t.Run("comma-joined city input is split", func(t *testing.T) {
		got := Merge("", []string{"beijing,shanghai"})
		assert.Equal(t, "beijing,shanghai", got)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		got := Merge(" beijing , shanghai ", []string{" chengdu "})
		assert.Equal(t, "beijing,chengdu,shanghai", got)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Merge("beijing,shanghai", []string{"chengdu"})
		twice := Merge(once, []string{"chengdu"})
		assert.Equal(t, once, twice)
	})

	t.Run("empty everything", func(t *testing.T) {
		assert.Equal(t, "", Merge("", nil))
	})
}

func TestTokens(t *testing.T) {
	assert.Nil(t, Tokens(""))
	assert.Equal(t, []string{"a", "b"}, Tokens("a,b"))
	assert.Equal(t, []string{"a", "b"}, Tokens(`["a","b"]`))
}
