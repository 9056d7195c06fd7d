package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		got, err := ExtractJSONObject(`{"a":1}`)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, got)
	})

	t.Run("json fence", func(t *testing.T) {
		got, err := ExtractJSONObject("```json\n{\"a\":1}\n```")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, got)
	})

	t.Run("surrounding prose", func(t *testing.T) {
		got, err := ExtractJSONObject(`Here is the result: {"a":1} hope that helps!`)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, got)
	})

	t.Run("braces inside strings", func(t *testing.T) {
		got, err := ExtractJSONObject(`{"reason":"covers {most} cases"} trailing`)
		require.NoError(t, err)
		assert.Equal(t, `{"reason":"covers {most} cases"}`, got)
	})

	t.Run("escaped quote inside string", func(t *testing.T) {
		got, err := ExtractJSONObject(`{"title":"the \"big\" one"}`)
		require.NoError(t, err)
		assert.Equal(t, `{"title":"the \"big\" one"}`, got)
	})

	t.Run("no object", func(t *testing.T) {
		_, err := ExtractJSONObject("sorry, I cannot answer that")
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})

	t.Run("truncated object returns tail", func(t *testing.T) {
		got, err := ExtractJSONObject(`{"a":[1,2`)
		require.NoError(t, err)
		assert.Equal(t, `{"a":[1,2`, got)
	})
}

func TestRepairJSON(t *testing.T) {
	t.Run("closes braces and brackets", func(t *testing.T) {
		assert.Equal(t, `{"a":[1,2]}`, RepairJSON(`{"a":[1,2`))
	})

	t.Run("closes unclosed string", func(t *testing.T) {
		assert.Equal(t, `{"a":"xy"}`, RepairJSON(`{"a":"xy`))
	})

	t.Run("trims dangling comma", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, RepairJSON(`{"a":1,`))
	})

	t.Run("valid input unchanged", func(t *testing.T) {
		assert.Equal(t, `{"a":1}`, RepairJSON(`{"a":1}`))
	})
}

func TestDecodeResponse(t *testing.T) {
	type result struct {
		Items []int  `json:"items"`
		Note  string `json:"note"`
	}

	t.Run("clean response", func(t *testing.T) {
		var got result
		err := DecodeResponse(`{"items":[1,2],"note":"ok"}`, &got)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got.Items)
	})

	t.Run("fenced response with prose", func(t *testing.T) {
		var got result
		err := DecodeResponse("The analysis follows.\n```json\n{\"items\":[3],\"note\":\"ok\"}\n```", &got)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, got.Items)
	})

	t.Run("truncated response is repaired", func(t *testing.T) {
		var got result
		err := DecodeResponse(`{"items":[1,2`, &got)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got.Items)
	})

	t.Run("hopeless input errors", func(t *testing.T) {
		var got result
		err := DecodeResponse("no json here at all", &got)
		assert.ErrorIs(t, err, ErrNoJSONObject)
	})
}
