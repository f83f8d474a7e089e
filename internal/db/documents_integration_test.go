//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verveschool/cv-builder/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	require.NoError(t, err, "failed to connect to test database")
	require.NoError(t, db.EnsureSchema(ctx))

	_, _ = db.pool.Exec(ctx, "DELETE FROM cv_documents WHERE file_name LIKE 'TEST_%'")
	return db
}

func TestIntegration_Documents_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	input := &DocumentInput{
		FileName:  "TEST_JANE_CV.pdf",
		Source:    SourceCLI,
		Candidate: &types.CandidateRecord{Name: "Test Jane", Activities: []string{"Chess"}},
		PDF:       []byte("%PDF-1.3 test"),
		PageCount: 2,
		GapCount:  1,
	}

	id, err := db.SaveDocument(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	t.Run("get", func(t *testing.T) {
		doc, err := db.GetDocument(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "TEST_JANE_CV.pdf", doc.FileName)
		assert.Equal(t, input.PDF, doc.PDF)
		assert.Equal(t, 2, doc.PageCount)
		assert.Equal(t, "Test Jane", doc.Candidate.Name)
	})

	t.Run("list filtered", func(t *testing.T) {
		docs, err := db.ListDocuments(ctx, DocumentFilters{Name: "test jane", Source: SourceCLI})
		require.NoError(t, err)
		require.NotEmpty(t, docs)
		assert.Equal(t, id, docs[0].ID)
		assert.Equal(t, "Test Jane", docs[0].CandidateName)
		assert.Equal(t, len(input.PDF), docs[0].SizeBytes)
	})

	t.Run("name wildcards match literally", func(t *testing.T) {
		docs, err := db.ListDocuments(ctx, DocumentFilters{Name: "%", Source: SourceCLI})
		require.NoError(t, err)
		assert.Empty(t, docs)

		docs, err = db.ListDocuments(ctx, DocumentFilters{Name: "test_jane", Source: SourceCLI})
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("missing", func(t *testing.T) {
		doc, err := db.GetDocument(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, db.DeleteDocument(ctx, id))
		assert.ErrorIs(t, db.DeleteDocument(ctx, id), ErrNotFound)
	})
}
