package validation

import (
	"fmt"
	"testing"

	pdf "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verveschool/cv-builder/internal/rendering"
	"github.com/verveschool/cv-builder/internal/types"
)

func sampleRecord(roles int) *types.CandidateRecord {
	rec := &types.CandidateRecord{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555 0100",
		Location: "Pune",
		Education: []types.EducationEntry{
			{Degree: "BBA", Institute: "Symbiosis", Year: "2023"},
		},
		Activities: []string{"Debate club"},
	}
	for i := 0; i < roles; i++ {
		rec.Experience = append(rec.Experience, types.ExperienceEntry{
			Role:    fmt.Sprintf("Associate %d", i+1),
			Company: "Acme",
			Dates:   "2024",
			Bullets: []string{"Grew accounts", "Ran demos"},
		})
	}
	return rec
}

func layout(t *testing.T, rec *types.CandidateRecord) *rendering.Document {
	t.Helper()
	doc, err := rendering.Layout(rec, rendering.DefaultConfig())
	require.NoError(t, err)
	return doc
}

func TestCountPDFPages_MatchesLayout(t *testing.T) {
	for _, roles := range []int{0, 2, 12} {
		t.Run(fmt.Sprintf("%d roles", roles), func(t *testing.T) {
			doc := layout(t, sampleRecord(roles))
			data, err := doc.Bytes()
			require.NoError(t, err)

			count, err := CountPDFPages(data)
			require.NoError(t, err)
			assert.Equal(t, doc.PageCount(), count)
		})
	}
}

func TestCountPDFPages_MultiPage(t *testing.T) {
	data, err := rendering.Render(sampleRecord(12), rendering.DefaultConfig())
	require.NoError(t, err)

	count, err := CountPDFPages(data)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 2)
}

func TestCountPDFPages_Invalid(t *testing.T) {
	_, err := CountPDFPages(nil)
	var readErr *PDFReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, readErr.Error(), "empty")

	_, err = CountPDFPages([]byte("not a pdf"))
	assert.ErrorAs(t, err, &readErr)
}

func TestValidatePDF_PageLimit(t *testing.T) {
	data, err := rendering.Render(sampleRecord(12), rendering.DefaultConfig())
	require.NoError(t, err)

	violations, err := ValidatePDF(data, Options{MaxPages: 1})
	require.NoError(t, err)
	require.True(t, violations.HasErrors())
	assert.Equal(t, types.ViolationPageOverflow, violations.Violations[0].Type)
	require.NotNil(t, violations.Violations[0].Page)

	violations, err = ValidatePDF(data, Options{})
	require.NoError(t, err)
	assert.Empty(t, violations.Violations)
}

func TestValidatePDF_Unreadable(t *testing.T) {
	violations, err := ValidatePDF([]byte("garbage"), Options{MaxPages: 1})
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)
	assert.Equal(t, types.ViolationUnreadable, violations.Violations[0].Type)
	assert.True(t, violations.HasErrors())
}

func TestValidatePDF_CorruptedBody(t *testing.T) {
	data, err := rendering.Render(sampleRecord(2), rendering.DefaultConfig())
	require.NoError(t, err)

	third := len(data) / 3
	for i := third; i < 2*third; i++ {
		data[i] = 0
	}

	var violations *types.Violations
	require.NotPanics(t, func() {
		violations, err = ValidatePDF(data, Options{MaxPages: 1, ExpectedText: []string{"JANE DOE"}})
	})
	require.NoError(t, err)

	kinds := make([]string, 0, len(violations.Violations))
	for _, v := range violations.Violations {
		kinds = append(kinds, v.Type)
	}
	assert.Subset(t, []string{types.ViolationUnreadable, types.ViolationMissingText, types.ViolationPageOverflow}, kinds)
}

func TestWithReader_RecoversPanic(t *testing.T) {
	data, err := rendering.Render(sampleRecord(0), rendering.DefaultConfig())
	require.NoError(t, err)

	_, err = withReader(data, func(*pdf.Reader) (int, error) {
		panic("malformed PDF: reading at offset 1912: EOF")
	})

	var readErr *PDFReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, err.Error(), "offset 1912")
}

func TestValidatePDF_ExpectedText(t *testing.T) {
	data, err := rendering.Render(sampleRecord(1), rendering.DefaultConfig())
	require.NoError(t, err)

	violations, err := ValidatePDF(data, Options{ExpectedText: []string{"Grew accounts", "Never written anywhere"}})
	require.NoError(t, err)
	require.Len(t, violations.Violations, 1)
	assert.Equal(t, types.ViolationMissingText, violations.Violations[0].Type)
	assert.Contains(t, violations.Violations[0].Details, "Never written anywhere")
	assert.False(t, violations.HasErrors())
}

func TestValidateDocument_ReportsGaps(t *testing.T) {
	rec := sampleRecord(0)
	rec.Location = "Łódź"
	doc := layout(t, rec)

	violations, err := ValidateDocument(doc, Options{MaxPages: 2})
	require.NoError(t, err)
	assert.False(t, violations.HasErrors())
	assert.Equal(t, len(doc.Gaps()), violations.Count(types.SeverityWarning))
	assert.NotZero(t, violations.Count(types.SeverityWarning))
	assert.Equal(t, types.ViolationUnencodable, violations.Violations[0].Type)
}

func TestMissingText_IgnoresWhitespace(t *testing.T) {
	got := missingText("JANE\nDOE   Pune", []string{"JANE DOE", "Pune", "", "Mumbai"})
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Details, "Mumbai")
}
