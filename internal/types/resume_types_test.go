package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestImportResultIsValidAlwaysSerialized 校验不通过时 is_valid 字段也必须出现在响应里
func TestImportResultIsValidAlwaysSerialized(t *testing.T) {
	result := ImportResult{
		Success: true,
		IsValid: false,
	}

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	v, ok := decoded["is_valid"]
	require.True(t, ok, "is_valid 键不能因零值被省略")
	assert.Equal(t, false, v)
}
