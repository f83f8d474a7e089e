package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/verveschool/cv-builder/internal/types"
)

// Document sources
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
)

// DefaultListLimit caps ListDocuments when no limit is given
const DefaultListLimit = 50

// DocumentInput is what SaveDocument persists for one rendered CV
type DocumentInput struct {
	ID        uuid.UUID
	FileName  string
	Source    string
	Candidate *types.CandidateRecord
	PDF       []byte
	PageCount int
	GapCount  int
}

// Document is a stored rendered CV including its PDF bytes
type Document struct {
	ID        uuid.UUID              `json:"id"`
	FileName  string                 `json:"file_name"`
	Source    string                 `json:"source"`
	Candidate *types.CandidateRecord `json:"candidate"`
	PDF       []byte                 `json:"-"`
	PageCount int                    `json:"page_count"`
	GapCount  int                    `json:"gap_count"`
	CreatedAt time.Time              `json:"created_at"`
}

// DocumentSummary is a lightweight view of a stored document for listing
type DocumentSummary struct {
	ID            uuid.UUID `json:"id"`
	FileName      string    `json:"file_name"`
	Source        string    `json:"source"`
	CandidateName string    `json:"candidate_name"`
	PageCount     int       `json:"page_count"`
	SizeBytes     int       `json:"size_bytes"`
	CreatedAt     time.Time `json:"created_at"`
}

// DocumentFilters holds optional filters for listing documents
type DocumentFilters struct {
	Name   string // Case-insensitive substring of the candidate name; % and _ match literally
	Source string
	Limit  int
}
