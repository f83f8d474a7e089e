package parsing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPayload = "```json\n" + `{
  "name": "Aarav Shah",
  "email": "aarav@example.com",
  "phone": "+91 98000 00000",
  "location": "Mumbai",
  "education": [
    {"degree": "B.Com", "institute": "Sydenham College", "year": 2022}
  ],
  "experience": [
    {"role": "Sales Intern", "company": "Acme", "dates": "Jan 2023 – Jun 2023",
     "bullets": ["Closed “big” deals", null, "Owned the pipeline"]}
  ],
  "activities": ["Captain — college cricket"]
}` + "\n```"

func TestParseCandidate_Full(t *testing.T) {
	rec, err := ParseCandidate([]byte(fullPayload))
	require.NoError(t, err)

	assert.Equal(t, "Aarav Shah", rec.Name)
	assert.Equal(t, "Mumbai", rec.Location)
	require.Len(t, rec.Education, 1)
	assert.Equal(t, "2022", rec.Education[0].Year)
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, "Jan 2023 - Jun 2023", rec.Experience[0].Dates)
	assert.Equal(t, []string{`Closed "big" deals`, "Owned the pipeline"}, rec.Experience[0].Bullets)
	assert.Equal(t, []string{"Captain -- college cricket"}, rec.Activities)
}

func TestParseCandidate_EmptyObject(t *testing.T) {
	rec, err := ParseCandidate([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, rec.Name)
	assert.Empty(t, rec.Experience)
	assert.Empty(t, rec.Activities)
}

func TestParseCandidate_NullFields(t *testing.T) {
	rec, err := ParseCandidate([]byte(`{"name": null, "experience": [{"role": "R", "bullets": null}]}`))
	require.NoError(t, err)
	assert.Empty(t, rec.Name)
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, "R", rec.Experience[0].Role)
	assert.Empty(t, rec.Experience[0].Bullets)
}

func TestParseCandidate_Errors(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		_, err := ParseCandidate([]byte("  ```json\n```  "))
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Contains(t, parseErr.Error(), "empty")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ParseCandidate([]byte(`{"name": `))
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("wrong shape", func(t *testing.T) {
		_, err := ParseCandidate([]byte(`{"activities": "chess"}`))
		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Error(), "candidate schema")
	})
}

func TestSanitizeValue(t *testing.T) {
	in := map[string]any{
		"a": "x – y",
		"b": []any{"‘q’", nil, map[string]any{"c": "“d”"}},
		"n": json.Number("7"),
		"t": true,
	}
	out := SanitizeValue(in).(map[string]any)

	assert.Equal(t, "x - y", out["a"])
	assert.Equal(t, []any{"'q'", map[string]any{"c": `"d"`}}, out["b"])
	assert.Equal(t, "7", out["n"])
	assert.Equal(t, true, out["t"])
	assert.Equal(t, "x – y", in["a"], "input must not be modified")
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	pe := &ParseError{Message: "bad", Cause: cause}
	assert.Equal(t, "parse error: bad: boom", pe.Error())
	assert.ErrorIs(t, pe, cause)
	assert.Equal(t, "parse error: bad", (&ParseError{Message: "bad"}).Error())

	ve := &ValidationError{Message: "wrong", Field: "name"}
	assert.Equal(t, "validation error in name: wrong", ve.Error())
	assert.Equal(t, "validation error: wrong", (&ValidationError{Message: "wrong"}).Error())
}
