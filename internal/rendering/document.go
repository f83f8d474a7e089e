package rendering

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// OpKind identifies the type of a positioned draw operation
type OpKind string

// Draw operation kinds
const (
	// OpText is an unbordered single-line text cell
	OpText OpKind = "text"
	// OpCell is a bordered, unfilled table cell
	OpCell OpKind = "cell"
	// OpFill is a bordered cell with a background fill
	OpFill OpKind = "fill"
	// OpTextBlock is word-wrapped text whose height was discovered while placing it
	OpTextBlock OpKind = "text_block"
	// OpBox is a border rectangle closing a block
	OpBox OpKind = "box"
	// OpPageBreak marks the start of a new page
	OpPageBreak OpKind = "page_break"
)

// Block labels which part of the layout produced an operation
type Block string

// Layout blocks
const (
	BlockHeading    Block = "heading"
	BlockSection    Block = "section"
	BlockAcademic   Block = "academic"
	BlockIntro      Block = "intro"
	BlockRole       Block = "role"
	BlockActivities Block = "activities"
)

// DrawOp is one positioned draw operation. Y is the top edge on Page.
type DrawOp struct {
	Kind  OpKind  `json:"kind"`
	Block Block   `json:"block,omitempty"`
	Page  int     `json:"page"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Text  string  `json:"text,omitempty"`
}

// Bottom returns the lower edge of the operation
func (op DrawOp) Bottom() float64 {
	return op.Y + op.H
}

// Document is the outcome of one layout pass: the draw operations in emission
// order plus the underlying PDF, serialized once on the first call to Bytes.
type Document struct {
	pdf   *fpdf.Fpdf
	ops   []DrawOp
	gaps  []Gap
	pages int

	data      []byte
	err       error
	finalized bool
}

func (d *Document) append(op DrawOp) {
	d.ops = append(d.ops, op)
	if op.Page > d.pages {
		d.pages = op.Page
	}
}

// Ops returns a copy of all draw operations in emission order
func (d *Document) Ops() []DrawOp {
	out := make([]DrawOp, len(d.ops))
	copy(out, d.ops)
	return out
}

// Boxes returns the border rectangles drawn for the given block type
func (d *Document) Boxes(block Block) []DrawOp {
	var boxes []DrawOp
	for _, op := range d.ops {
		if op.Kind == OpBox && op.Block == block {
			boxes = append(boxes, op)
		}
	}
	return boxes
}

// texts returns the text of every operation of the given kind, in order
func (d *Document) texts(kind OpKind) []string {
	var texts []string
	for _, op := range d.ops {
		if op.Kind == kind {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

// PageCount returns the number of pages laid out
func (d *Document) PageCount() int {
	return d.pages
}

// Gaps returns every rune that had to be folded or replaced during encoding
func (d *Document) Gaps() []Gap {
	out := make([]Gap, len(d.gaps))
	copy(out, d.gaps)
	return out
}

// Bytes finalizes the document into PDF bytes. The PDF is serialized on the
// first call only; every call returns its own copy of that buffer.
func (d *Document) Bytes() ([]byte, error) {
	if d.finalized {
		if d.err != nil {
			return nil, d.err
		}
		return bytes.Clone(d.data), nil
	}
	d.finalized = true

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		d.err = &RenderError{Message: "failed to serialize PDF", Cause: err}
		return nil, d.err
	}
	d.data = buf.Bytes()
	return bytes.Clone(d.data), nil
}
