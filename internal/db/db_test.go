package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verveschool/cv-builder/internal/types"
)

func TestSourceConstants(t *testing.T) {
	assert.NotEqual(t, SourceCLI, SourceHTTP)
	assert.NotEmpty(t, SourceCLI)
	assert.NotEmpty(t, SourceHTTP)
}

func TestDocument_JSONOmitsPDF(t *testing.T) {
	doc := Document{
		FileName:  "JANE_DOE_CV.pdf",
		Candidate: &types.CandidateRecord{Name: "Jane Doe"},
		PDF:       []byte("%PDF-1.3"),
		PageCount: 1,
	}

	assert.Equal(t, "JANE_DOE_CV.pdf", doc.FileName)
	assert.Equal(t, 1, doc.PageCount)
	assert.NotContains(t, mustJSON(t, doc), "PDF-1.3")
	assert.Contains(t, mustJSON(t, doc), `"name":"Jane Doe"`)
}

func TestSaveDocument_RejectsBadInput(t *testing.T) {
	db := &DB{}
	ctx := context.Background()

	_, err := db.SaveDocument(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil")

	_, err = db.SaveDocument(ctx, &DocumentInput{FileName: "x.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no PDF bytes")
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, db.Close)
}

func TestLikeEscaper(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"jane", "jane"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, likeEscaper.Replace(tt.in), tt.in)
	}
}

func TestErrNotFound_Wrapped(t *testing.T) {
	err := fmt.Errorf("%w: %s", ErrNotFound, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "document not found: abc", err.Error())
}
