package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/verveschool/cv-builder/internal/types"
)

// ErrNotFound is returned when no stored document has the requested ID
var ErrNotFound = errors.New("document not found")

// likeEscaper makes user text match literally inside an ILIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SaveDocument stores a rendered CV and returns its ID.
// A nil input ID is replaced with a fresh one.
func (db *DB) SaveDocument(ctx context.Context, input *DocumentInput) (uuid.UUID, error) {
	if input == nil {
		return uuid.Nil, fmt.Errorf("document input is nil")
	}
	if len(input.PDF) == 0 {
		return uuid.Nil, fmt.Errorf("document %s has no PDF bytes", input.FileName)
	}

	id := input.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	candidate := input.Candidate
	if candidate == nil {
		candidate = &types.CandidateRecord{}
	}
	candidateJSON, err := json.Marshal(candidate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal candidate: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO cv_documents (id, file_name, source, candidate, pdf, page_count, gap_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, input.FileName, input.Source, candidateJSON, input.PDF, input.PageCount, input.GapCount,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document %s: %w", input.FileName, err)
	}
	return id, nil
}

// GetDocument retrieves a stored document by ID. Returns nil, nil when absent.
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*Document, error) {
	var doc Document
	var candidateJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, file_name, source, candidate, pdf, page_count, gap_count, created_at
		 FROM cv_documents WHERE id = $1`,
		id,
	).Scan(&doc.ID, &doc.FileName, &doc.Source, &candidateJSON, &doc.PDF, &doc.PageCount, &doc.GapCount, &doc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var candidate types.CandidateRecord
	if err := json.Unmarshal(candidateJSON, &candidate); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate: %w", err)
	}
	doc.Candidate = &candidate

	return &doc, nil
}

// ListDocuments retrieves recent documents with optional filters
func (db *DB) ListDocuments(ctx context.Context, filters DocumentFilters) ([]DocumentSummary, error) {
	if filters.Limit <= 0 {
		filters.Limit = DefaultListLimit
	}

	query := `SELECT id, file_name, source, COALESCE(candidate->>'name', ''), page_count, octet_length(pdf), created_at
		FROM cv_documents WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Name != "" {
		query += fmt.Sprintf(" AND candidate->>'name' ILIKE $%d", argNum)
		args = append(args, "%"+likeEscaper.Replace(filters.Name)+"%")
		argNum++
	}
	if filters.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argNum)
		args = append(args, filters.Source)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentSummary
	for rows.Next() {
		var d DocumentSummary
		if err := rows.Scan(&d.ID, &d.FileName, &d.Source, &d.CandidateName, &d.PageCount, &d.SizeBytes, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// DeleteDocument deletes a stored document
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM cv_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
