package audit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactTopLevel(t *testing.T) {
	in := map[string]interface{}{
		"mrn":   "MRN-001",
		"email": "a@b.c",
		"phone": nil,
		"type":  "bar",
	}

	out := Redact(in).(map[string]interface{})

	assert.Equal(t, "[REDACTED]", out["mrn"])
	assert.Equal(t, "[REDACTED]", out["email"])
	assert.Nil(t, out["phone"])
	assert.Equal(t, "bar", out["type"])
	assert.Equal(t, "MRN-001", in["mrn"], "input must not be modified")
}

func TestRedactNested(t *testing.T) {
	in := map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{"dna_id": "D1", "value": 1.0},
		},
	}

	out := Redact(in).(map[string]interface{})
	row := out["data"].([]interface{})[0].(map[string]interface{})

	assert.Equal(t, "[REDACTED]", row["dna_id"])
	assert.Equal(t, 1.0, row["value"])
}

func TestRedactedJSON(t *testing.T) {
	payload := struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{Type: "pie", Name: "Jane Doe"}

	raw, err := RedactedJSON(payload)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]string{"type": "pie", "name": "[REDACTED]"}, decoded)
}

func TestRedactedJSONRejectsUnencodable(t *testing.T) {
	_, err := RedactedJSON(map[string]interface{}{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, ClampLimit(0))
	assert.Equal(t, 50, ClampLimit(-3))
	assert.Equal(t, 20, ClampLimit(20))
	assert.Equal(t, 500, ClampLimit(10000))
}
