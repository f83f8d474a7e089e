// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/verveschool/cv-builder/internal/rendering"
	"github.com/verveschool/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintCandidate outputs a human-readable summary of the parsed candidate record.
func (p *Printer) PrintCandidate(rec *types.CandidateRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", rec.Name))
	sb.WriteString(fmt.Sprintf("Contact:   %s\n", rec.ContactLine()))
	sb.WriteString(fmt.Sprintf("Education: %d entries\n", len(rec.Education)))
	sb.WriteString("\n")

	if len(rec.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(rec.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			role := rec.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d bullets)\n", role.Header(), len(role.Bullets)))
		}
		if len(rec.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Activities: %d", len(rec.Activities)))

	p.printBox("PARSED CANDIDATE", sb.String())
}

// PrintLayout outputs page, block and box placement for a finished layout pass.
func (p *Printer) PrintLayout(doc *rendering.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages:     %d\n", doc.PageCount()))
	sb.WriteString(fmt.Sprintf("Draw ops:  %d\n", len(doc.Ops())))
	sb.WriteString("\n")

	breaks := 0
	for _, op := range doc.Ops() {
		if op.Kind == rendering.OpPageBreak {
			breaks++
			sb.WriteString(fmt.Sprintf("Break before %s -> page %d (%s)\n", op.Block, op.Page, op.Text))
		}
	}
	if breaks > 0 {
		sb.WriteString("\n")
	}

	for _, block := range []rendering.Block{rendering.BlockIntro, rendering.BlockRole, rendering.BlockActivities} {
		boxes := doc.Boxes(block)
		if len(boxes) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s boxes: %d\n", block, len(boxes)))
		count := min(len(boxes), maxItemsToShow)
		for i := 0; i < count; i++ {
			b := boxes[i]
			sb.WriteString(fmt.Sprintf("  p%d  y=%.1f..%.1f\n", b.Page, b.Y, b.Bottom()))
		}
		if len(boxes) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(boxes)-maxItemsToShow))
		}
	}

	if gaps := doc.Gaps(); len(gaps) > 0 {
		sb.WriteString(fmt.Sprintf("\nReplaced characters: %d", len(gaps)))
	}

	p.printBox("LAYOUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any constraint violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations (%d errors, %d warnings):\n\n",
		len(violations.Violations), violations.Count(types.SeverityError), violations.Count(types.SeverityWarning)))

	for i, v := range violations.Violations {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", v.Type, v.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Details, 45)))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONSTRAINT VIOLATIONS", sb.String())
}
