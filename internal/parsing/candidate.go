// Package parsing turns raw extraction payloads into sanitized candidate records.
package parsing

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/verveschool/cv-builder/internal/rendering"
	"github.com/verveschool/cv-builder/internal/schemas"
	"github.com/verveschool/cv-builder/internal/types"
)

// ParseCandidate decodes an extraction payload into a CandidateRecord.
// Code fences are stripped, the payload is checked against the candidate
// schema, and every string leaf is normalized before the typed decode.
func ParseCandidate(raw []byte) (*types.CandidateRecord, error) {
	cleaned := CleanJSONBlock(string(raw))
	if cleaned == "" {
		return nil, &ParseError{Message: "payload is empty"}
	}

	if err := schemas.ValidateCandidate(cleaned); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			return nil, &ParseError{Message: "payload is not valid JSON", Cause: err}
		}
		return nil, &ValidationError{Message: "payload does not match candidate schema", Cause: err}
	}

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, &ParseError{Message: "failed to decode payload", Cause: err}
	}

	sanitized, err := json.Marshal(SanitizeValue(generic))
	if err != nil {
		return nil, &ParseError{Message: "failed to re-encode sanitized payload", Cause: err}
	}

	var rec types.CandidateRecord
	if err := json.NewDecoder(bytes.NewReader(sanitized)).Decode(&rec); err != nil {
		return nil, &ParseError{Message: "failed to decode candidate record", Cause: err}
	}
	return &rec, nil
}

// SanitizeValue walks decoded JSON and normalizes every string it finds.
// Numbers become their literal text so numeric years decode into string fields.
// Nulls inside lists are dropped; other values pass through unchanged.
func SanitizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = SanitizeValue(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, SanitizeValue(item))
		}
		return out
	case string:
		return rendering.NormalizeText(val)
	case json.Number:
		return val.String()
	default:
		return v
	}
}
