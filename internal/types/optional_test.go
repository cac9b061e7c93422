package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshal(t *testing.T) {
	t.Run("absent key leaves the field unset", func(t *testing.T) {
		var req UpdateStudentRequest
		require.NoError(t, json.Unmarshal([]byte(`{"age": 17}`), &req))

		assert.False(t, req.Name.Set)
		assert.False(t, req.ClassYear.Set)
		assert.True(t, req.Age.Set)
		assert.Equal(t, 17, req.Age.Value)
	})

	t.Run("explicit null is present with the zero value", func(t *testing.T) {
		var req UpdateStudentRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &req))

		assert.True(t, req.Name.Set)
		assert.Equal(t, "", req.Name.Value)
	})

	t.Run("empty object is fully unset", func(t *testing.T) {
		var req UpdateStudentRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

		assert.True(t, req.IsEmpty())
	})

	t.Run("all fields present", func(t *testing.T) {
		var req UpdateStudentRequest
		payload := `{"name": "Jane Doe", "age": 15, "class_year": "year 10"}`
		require.NoError(t, json.Unmarshal([]byte(payload), &req))

		assert.False(t, req.IsEmpty())
		assert.Equal(t, Some("Jane Doe"), req.Name)
		assert.Equal(t, Some(15), req.Age)
		assert.Equal(t, Some("year 10"), req.ClassYear)
	})
}

func TestOptionalMarshal(t *testing.T) {
	data, err := json.Marshal(Some(42))
	require.NoError(t, err)
	assert.JSONEq(t, `42`, string(data))

	data, err = json.Marshal(Optional[int]{})
	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(data))
}
