package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Title    Optional[string] `json:"title"`
		Priority Optional[int]    `json:"priority"`
	}

	t.Run("absent fields stay unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Title.Set)
		assert.False(t, p.Priority.Set)
	})

	t.Run("explicit null is set and null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title": null}`), &p))
		assert.True(t, p.Title.Set)
		assert.True(t, p.Title.Null)
		assert.False(t, p.Priority.Set)
	})

	t.Run("value is set with value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"title": "A", "priority": 2}`), &p))
		assert.True(t, p.Title.Set)
		assert.False(t, p.Title.Null)
		assert.Equal(t, "A", p.Title.Value)
		assert.Equal(t, 2, p.Priority.Value)
	})

	t.Run("type mismatch errors", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"priority": "high"}`), &p))
	})
}
