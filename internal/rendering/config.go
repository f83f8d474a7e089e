package rendering

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/verveschool/cv-builder/internal/types"
)

// Color is an RGB fill or text color
type Color struct {
	R, G, B int
}

var (
	// slateFill is the section header background
	slateFill = Color{82, 101, 109}
	// beigeFill is the role header and table header background
	beigeFill = Color{225, 222, 214}
	white     = Color{255, 255, 255}
	black     = Color{0, 0, 0}
)

// pageSizes holds portrait page dimensions in millimetres
var pageSizes = map[string][2]float64{
	"A3":     {297, 420},
	"A4":     {210, 297},
	"Letter": {215.9, 279.4},
	"Legal":  {215.9, 355.6},
}

// Config holds the fixed layout policy. All lengths are in millimetres.
// The defaults reproduce the Master Table blueprint exactly; change them only
// when a different visual policy is intended.
type Config struct {
	PageSize string `validate:"required,oneof=A3 A4 Letter Legal"`

	SideMargin   float64 `validate:"gte=0"`
	TopMargin    float64 `validate:"gte=0"`
	BottomMargin float64 `validate:"gte=0"`

	// PageBreakY forces a new page before a role or activities block when the
	// cursor is strictly below it. It does not measure the upcoming block, so
	// a header plus its first bullet can still be split by the automatic break.
	// The closing pad of a block is a plain line feed that never breaks, so a
	// box ending near the bottom can extend into the bottom margin.
	// The value must fit every page size; A5 is unsupported for this reason.
	PageBreakY float64 `validate:"gt=0"`

	InnerPad     float64 `validate:"gte=0"`
	LineHeight   float64 `validate:"gt=0"`
	BulletWidth  float64 `validate:"gt=0"`
	BulletIndent float64 `validate:"gte=0"`

	NameHeight          float64 `validate:"gt=0"`
	ContactHeight       float64 `validate:"gt=0"`
	SectionHeaderHeight float64 `validate:"gt=0"`
	RoleHeaderHeight    float64 `validate:"gt=0"`
	TableHeaderHeight   float64 `validate:"gt=0"`
	AcademicRowHeight   float64 `validate:"gt=0"`

	// ColumnSplit is the qualification/institute/year share of the content width
	ColumnSplit [3]float64 `validate:"dive,gt=0"`

	// Intro is emitted as the first block of the experience section for every candidate
	Intro types.IntroBlock

	// CreationDate is written to the document info; zero means the time of rendering
	CreationDate time.Time
}

// DefaultConfig returns the standard A4 layout with the default intro block
func DefaultConfig() Config {
	return Config{
		PageSize:            "A4",
		SideMargin:          12.7,
		TopMargin:           28,
		BottomMargin:        15,
		PageBreakY:          240,
		InnerPad:            6,
		LineHeight:          6,
		BulletWidth:         4,
		BulletIndent:        3,
		NameHeight:          8,
		ContactHeight:       6,
		SectionHeaderHeight: 7,
		RoleHeaderHeight:    6,
		TableHeaderHeight:   7,
		AcademicRowHeight:   12,
		ColumnSplit:         [3]float64{0.4, 0.4, 0.2},
		Intro:               types.DefaultIntroBlock(),
	}
}

// WithIntro returns a copy of the config using the given intro block
func (c Config) WithIntro(intro types.IntroBlock) Config {
	c.Intro = intro
	return c
}

// Validate checks the config for values the layout cannot honor
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &ConfigError{Message: "invalid field", Cause: err}
	}

	sum := c.ColumnSplit[0] + c.ColumnSplit[1] + c.ColumnSplit[2]
	if math.Abs(sum-1) > 1e-9 {
		return &ConfigError{Message: fmt.Sprintf("column split must sum to 1, got %g", sum)}
	}

	if c.ContentWidth() <= c.BulletIndent*2 {
		return &ConfigError{Message: fmt.Sprintf("side margins %g leave no content width on %s", c.SideMargin, c.PageSize)}
	}

	_, h := c.PageDimensions()
	if c.PageBreakY <= c.TopMargin || c.PageBreakY >= h-c.BottomMargin {
		return &ConfigError{Message: fmt.Sprintf("page break threshold %g must lie between top margin and bottom margin", c.PageBreakY)}
	}

	return nil
}

// PageDimensions returns the portrait width and height of the configured page size
func (c Config) PageDimensions() (width, height float64) {
	dims, ok := pageSizes[c.PageSize]
	if !ok {
		return 0, 0
	}
	return dims[0], dims[1]
}

// ContentWidth is the page width minus left and right margins
func (c Config) ContentWidth() float64 {
	w, _ := c.PageDimensions()
	return w - 2*c.SideMargin
}

// AcademicColumns returns the qualification, institute and year column widths.
// The year column takes the remainder so the three always fill the content width.
func (c Config) AcademicColumns() [3]float64 {
	width := c.ContentWidth()
	qual := width * c.ColumnSplit[0]
	inst := width * c.ColumnSplit[1]
	return [3]float64{qual, inst, width - qual - inst}
}

// bulletTextWidth is the wrap width of bullet text, matching the blueprint
func (c Config) bulletTextWidth() float64 {
	return c.ContentWidth() - 2*c.BulletIndent
}
