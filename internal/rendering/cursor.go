package rendering

import (
	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Arial"
	// bulletGlyph encodes to 0x95 in cp1252
	bulletGlyph = "•"
)

// Page break reasons recorded on OpPageBreak operations
const (
	breakThreshold = "threshold"
	breakAuto      = "auto"
)

// cursor is the mutable layout state of one pass. The vertical offset and page
// index live in the underlying fpdf document; every placement goes through the
// cursor so it is mirrored as a DrawOp.
type cursor struct {
	pdf *fpdf.Fpdf
	cfg Config
	doc *Document
}

// boxMark is the start of a bordered block
type boxMark struct {
	page int
	y    float64
}

func newCursor(cfg Config, doc *Document, title string) *cursor {
	pdf := fpdf.New("P", "mm", cfg.PageSize, "")
	pdf.SetMargins(cfg.SideMargin, cfg.TopMargin, cfg.SideMargin)
	pdf.SetAutoPageBreak(true, cfg.BottomMargin)
	pdf.SetCreator("cv-builder", false)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	if !cfg.CreationDate.IsZero() {
		pdf.SetCreationDate(cfg.CreationDate)
	}
	pdf.AddPage()

	doc.pdf = pdf
	doc.pages = 1

	return &cursor{pdf: pdf, cfg: cfg, doc: doc}
}

func (c *cursor) y() float64 {
	return c.pdf.GetY()
}

func (c *cursor) page() int {
	return c.pdf.PageNo()
}

// left moves the cursor back to the left content margin
func (c *cursor) left() {
	c.pdf.SetX(c.cfg.SideMargin)
}

func (c *cursor) ln(h float64) {
	c.pdf.Ln(h)
}

func (c *cursor) font(style string, size float64) {
	c.pdf.SetFont(fontFamily, style, size)
}

func (c *cursor) fill(col Color) {
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

func (c *cursor) textColor(col Color) {
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

func (c *cursor) encode(text string) string {
	enc, gaps := encodeCP1252(text)
	if len(gaps) > 0 {
		c.doc.gaps = append(c.doc.gaps, gaps...)
	}
	return enc
}

// cell places a single-line cell. Bordered kinds get a full border and OpFill
// also paints the current fill color. A zero width extends to the right margin.
func (c *cursor) cell(kind OpKind, block Block, w, h float64, text, align string, newLine bool) {
	startPage := c.page()
	x, y := c.pdf.GetX(), c.y()

	border := ""
	if kind == OpCell || kind == OpFill {
		border = "1"
	}
	ln := 0
	if newLine {
		ln = 1
	}
	c.pdf.CellFormat(w, h, c.encode(text), border, ln, align, kind == OpFill, 0, "")

	if c.page() != startPage {
		c.recordBreaks(block, startPage, breakAuto)
		y = c.cfg.TopMargin
	}
	if w == 0 {
		w = c.cfg.SideMargin + c.cfg.ContentWidth() - x
	}
	c.doc.append(DrawOp{Kind: kind, Block: block, Page: c.page(), X: x, Y: y, W: w, H: h, Text: text})
}

// wrap hands text to the wrapping primitive at the current x. The number of
// lines is up to fpdf; the cursor ends on the line below the last one.
func (c *cursor) wrap(block Block, w float64, text string) {
	startPage := c.page()
	x, y := c.pdf.GetX(), c.y()

	c.pdf.MultiCell(w, c.cfg.LineHeight, c.encode(text), "", "", false)

	if c.page() != startPage {
		c.recordBreaks(block, startPage, breakAuto)
		y = c.cfg.TopMargin
	}
	c.doc.append(DrawOp{Kind: OpTextBlock, Block: block, Page: c.page(), X: x, Y: y, W: w, H: c.y() - y, Text: text})
}

// recordBreaks appends one page break op per page opened since fromPage
func (c *cursor) recordBreaks(block Block, fromPage int, reason string) {
	for p := fromPage + 1; p <= c.page(); p++ {
		c.doc.append(DrawOp{Kind: OpPageBreak, Block: block, Page: p, X: c.cfg.SideMargin, Y: c.cfg.TopMargin, Text: reason})
	}
}

// breakIfPast starts a new page when the cursor is below the break threshold
func (c *cursor) breakIfPast(block Block) {
	if c.y() <= c.cfg.PageBreakY {
		return
	}
	startPage := c.page()
	c.pdf.AddPage()
	c.recordBreaks(block, startPage, breakThreshold)
}

func (c *cursor) mark() boxMark {
	return boxMark{page: c.page(), y: c.y()}
}

// closeBox draws the border from m down to the cursor. A block that the
// primitive's automatic page break split gets one rectangle per page.
func (c *cursor) closeBox(block Block, m boxMark) {
	x, w := c.cfg.SideMargin, c.cfg.ContentWidth()
	endPage, endY := c.page(), c.y()

	if endPage == m.page {
		c.rect(block, m.page, x, m.y, w, endY-m.y)
		return
	}

	_, pageHeight := c.cfg.PageDimensions()
	for p := m.page; p <= endPage; p++ {
		top, bottom := c.cfg.TopMargin, pageHeight-c.cfg.BottomMargin
		if p == m.page {
			top = m.y
		}
		if p == endPage {
			bottom = endY
		}
		c.pdf.SetPage(p)
		c.rect(block, p, x, top, w, bottom-top)
	}
	c.pdf.SetPage(endPage)
}

func (c *cursor) rect(block Block, page int, x, y, w, h float64) {
	c.pdf.Rect(x, y, w, h, "D")
	c.doc.append(DrawOp{Kind: OpBox, Block: block, Page: page, X: x, Y: y, W: w, H: h})
}
