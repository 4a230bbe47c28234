package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			content, err := Load(name)
			require.NoError(t, err)

			var schema map[string]any
			require.NoError(t, json.Unmarshal([]byte(content), &schema))
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema["$schema"])
			assert.Equal(t, name, schema["$id"])
			assert.Equal(t, "object", schema["type"])
			assert.NotEmpty(t, schema["required"])
		})
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("nope.schema.json")
	assert.Error(t, err)
}
