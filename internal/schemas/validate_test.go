package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateSchema_IsValidJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(CandidateSchema()), &v))
	assert.Equal(t, "object", v["type"])
}

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantError bool
	}{
		{"empty object", `{}`, false},
		{"full record", `{
			"name": "Jane", "email": "j@x.io", "phone": "1", "location": "Pune",
			"education": [{"degree": "BA", "institute": "DU", "year": "2020"}],
			"experience": [{"role": "R", "company": "C", "dates": "D", "bullets": ["b1", "b2"]}],
			"activities": ["chess"]
		}`, false},
		{"nulls allowed", `{"name": null, "education": null, "activities": [null]}`, false},
		{"numeric year", `{"education": [{"year": 2020}]}`, false},
		{"unknown fields ignored", `{"summary": "extra"}`, false},
		{"name wrong type", `{"name": 42}`, true},
		{"activities not a list", `{"activities": "chess"}`, true},
		{"bullet wrong type", `{"experience": [{"bullets": [1]}]}`, true},
		{"root not an object", `["a"]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.json)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type, got %T", err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateCandidate_MalformedJSON(t *testing.T) {
	err := ValidateCandidate(`{ invalid json }`)
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "malformed input should surface as a load error")
}

func TestValidationError_Format(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "name", Message: "Invalid type"},
		{Field: "(root)", Message: "bad"},
	}}
	msg := err.Error()
	assert.Contains(t, msg, "1. name: Invalid type")
	assert.Contains(t, msg, "2. (root): bad")
}
