package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/verveschool/cv-builder/internal/rendering"
	"github.com/verveschool/cv-builder/internal/types"
)

// Options controls which checks run against a finished document
type Options struct {
	MaxPages     int      // 0 disables the page limit
	ExpectedText []string // Strings that must survive into the extracted text
}

// ValidatePDF checks finished PDF bytes against opts.
// Unreadable bytes are reported as a violation rather than an error.
func ValidatePDF(data []byte, opts Options) (*types.Violations, error) {
	var all []types.Violation

	pageCount, err := CountPDFPages(data)
	if err != nil {
		var readErr *PDFReadError
		if errors.As(err, &readErr) {
			all = append(all, types.Violation{
				Type:     types.ViolationUnreadable,
				Severity: types.SeverityError,
				Details:  readErr.Error(),
			})
			return &types.Violations{Violations: all}, nil
		}
		return nil, err
	}

	if opts.MaxPages > 0 && pageCount > opts.MaxPages {
		all = append(all, types.Violation{
			Type:     types.ViolationPageOverflow,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("CV has %d pages, maximum allowed is %d", pageCount, opts.MaxPages),
			Page:     intPtr(pageCount),
		})
	}

	if len(opts.ExpectedText) > 0 {
		text, err := ExtractText(data)
		if err != nil {
			all = append(all, types.Violation{
				Type:     types.ViolationMissingText,
				Severity: types.SeverityWarning,
				Details:  fmt.Sprintf("Could not extract text: %v", err),
			})
		} else {
			all = append(all, missingText(text, opts.ExpectedText)...)
		}
	}

	return &types.Violations{Violations: all}, nil
}

// ValidateDocument finalizes doc and validates its bytes.
// Characters the layout pass had to replace are reported as warnings.
func ValidateDocument(doc *rendering.Document, opts Options) (*types.Violations, error) {
	data, err := doc.Bytes()
	if err != nil {
		return nil, &Error{Message: "failed to finalize document", Cause: err}
	}

	violations, err := ValidatePDF(data, opts)
	if err != nil {
		return nil, err
	}

	if overflow := AnalyzePageOverflow(doc, opts.MaxPages); overflow.ExcessPages > 0 {
		for i := range violations.Violations {
			if violations.Violations[i].Type == types.ViolationPageOverflow {
				violations.Violations[i].Details += fmt.Sprintf("; %d text block(s) in %d box(es) fall past page %d",
					overflow.TextBlocks, overflow.Boxes, opts.MaxPages)
			}
		}
	}

	for _, gap := range doc.Gaps() {
		violations.Violations = append(violations.Violations, types.Violation{
			Type:     types.ViolationUnencodable,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("%U %q rendered as %q", gap.Rune, gap.Rune, gap.Replacement),
		})
	}

	return violations, nil
}

// missingText compares with whitespace removed since extracted text
// carries the layout's line breaks and column padding.
func missingText(text string, expected []string) []types.Violation {
	haystack := squash(text)
	var out []types.Violation
	for _, want := range expected {
		needle := squash(want)
		if needle == "" || strings.Contains(haystack, needle) {
			continue
		}
		out = append(out, types.Violation{
			Type:     types.ViolationMissingText,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("Expected text %q not found in document", want),
		})
	}
	return out
}

func squash(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func intPtr(i int) *int {
	return &i
}
