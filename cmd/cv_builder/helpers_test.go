package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const janeJSON = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "555 0100",
	"location": "Pune",
	"education": [{"degree": "BBA", "institute": "Symbiosis", "year": "2023"}],
	"experience": [{"role": "Associate", "company": "Acme", "dates": "2024", "bullets": ["Closed deals"]}],
	"activities": ["Debate"]
}`

// writeFile writes content under dir and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// longCandidate returns candidate JSON that lays out over several pages
func longCandidate(roles int) string {
	parts := make([]string, roles)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"role": "Rep %d", "company": "Acme", "bullets": ["one", "two", "three"]}`, i)
	}
	return `{"name": "Long Candidate", "experience": [` + strings.Join(parts, ",") + `]}`
}
