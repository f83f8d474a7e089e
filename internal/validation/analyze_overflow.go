package validation

import "github.com/verveschool/cv-builder/internal/rendering"

// OverflowAnalysis describes what a laid-out document places past the page limit
type OverflowAnalysis struct {
	ExcessPages int // Pages beyond the limit
	TextBlocks  int // Wrapped paragraphs and bullets placed on those pages
	Boxes       int // Block borders drawn on those pages
}

// AnalyzePageOverflow counts the content beyond maxPages from the draw
// operations, so a caller knows how much to cut. maxPages <= 0 means no limit.
func AnalyzePageOverflow(doc *rendering.Document, maxPages int) *OverflowAnalysis {
	analysis := &OverflowAnalysis{}
	if doc == nil || maxPages <= 0 || doc.PageCount() <= maxPages {
		return analysis
	}

	analysis.ExcessPages = doc.PageCount() - maxPages
	for _, op := range doc.Ops() {
		if op.Page <= maxPages {
			continue
		}
		switch op.Kind {
		case rendering.OpTextBlock:
			analysis.TextBlocks++
		case rendering.OpBox:
			analysis.Boxes++
		}
	}
	return analysis
}
