package rendering

import (
	"fmt"
	"log"
	"strings"

	"github.com/verveschool/cv-builder/internal/types"
)

// Section titles
const (
	SectionAcademic   = "ACADEMIC QUALIFICATIONS"
	SectionExperience = "PROFESSIONAL EXPERIENCE"
	SectionActivities = "NOTABLE ACTIVITIES & SKILLS"
)

// Academic table header labels
var academicHeaders = [3]string{"  Qualification", "  Institute", "  Year"}

// Layout runs one layout pass over rec and returns the unfinalized document.
// Every string in rec and in cfg.Intro is normalized first; rec itself is not
// modified. A nil record lays out as an empty one.
func Layout(rec *types.CandidateRecord, cfg Config) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data := SanitizeCandidate(rec)
	intro := SanitizeIntro(cfg.Intro)

	doc := &Document{}
	c := newCursor(cfg, doc, data.Name)

	c.heading(&data)
	c.academic(data.Education)
	c.experience(intro, data.Experience)
	c.activities(data.Activities)

	if err := c.pdf.Error(); err != nil {
		return nil, &RenderError{Message: "layout pass failed", Cause: err}
	}

	if len(doc.gaps) > 0 {
		log.Printf("[render] %d character(s) outside cp1252 replaced: %s", len(doc.gaps), describeGaps(doc.gaps))
	}

	return doc, nil
}

// Render lays out rec and finalizes it into PDF bytes
func Render(rec *types.CandidateRecord, cfg Config) ([]byte, error) {
	doc, err := Layout(rec, cfg)
	if err != nil {
		return nil, err
	}
	return doc.Bytes()
}

// heading draws the centered name and contact lines
func (c *cursor) heading(data *types.CandidateRecord) {
	c.left()
	c.font("B", 21)
	c.cell(OpText, BlockHeading, 0, c.cfg.NameHeight, strings.ToUpper(data.Name), "C", true)
	c.ln(1)
	c.font("B", 12)
	c.cell(OpText, BlockHeading, 0, c.cfg.ContactHeight, data.ContactLine(), "C", true)
	c.ln(3)
}

// academic draws the qualifications table, one fixed-height row per entry
func (c *cursor) academic(entries []types.EducationEntry) {
	c.sectionHeader(SectionAcademic)

	cols := c.cfg.AcademicColumns()
	c.left()
	c.font("B", 10)
	c.fill(beigeFill)
	c.cell(OpFill, BlockAcademic, cols[0], c.cfg.TableHeaderHeight, academicHeaders[0], "L", false)
	c.cell(OpFill, BlockAcademic, cols[1], c.cfg.TableHeaderHeight, academicHeaders[1], "L", false)
	c.cell(OpFill, BlockAcademic, cols[2], c.cfg.TableHeaderHeight, academicHeaders[2], "C", true)

	c.font("", 10)
	for _, edu := range entries {
		c.cell(OpCell, BlockAcademic, cols[0], c.cfg.AcademicRowHeight, "  "+edu.Degree, "", false)
		c.cell(OpCell, BlockAcademic, cols[1], c.cfg.AcademicRowHeight, "  "+edu.Institute, "", false)
		c.cell(OpCell, BlockAcademic, cols[2], c.cfg.AcademicRowHeight, edu.Year, "C", true)
	}
}

// experience draws the intro block followed by one role block per entry.
// Only the candidate's own roles are subject to the page break threshold.
func (c *cursor) experience(intro types.IntroBlock, roles []types.ExperienceEntry) {
	c.sectionHeader(SectionExperience)

	c.roleBlock(BlockIntro, intro.Header, intro.Summary, intro.Bullets)

	for _, role := range roles {
		c.breakIfPast(BlockRole)
		c.roleBlock(BlockRole, role.Header(), "", role.Bullets)
	}
}

// activities draws the activities banner and a single bordered bullet list
func (c *cursor) activities(items []string) {
	c.breakIfPast(BlockActivities)
	c.sectionHeader(SectionActivities)
	c.bulletBox(BlockActivities, items)
}

// describeGaps lists each distinct replaced rune once, e.g. `U+0142 'ł' -> "?"`
func describeGaps(gaps []Gap) string {
	seen := make(map[rune]bool, len(gaps))
	var parts []string
	for _, g := range gaps {
		if seen[g.Rune] {
			continue
		}
		seen[g.Rune] = true
		parts = append(parts, fmt.Sprintf("%U %q -> %q", g.Rune, g.Rune, g.Replacement))
	}
	return strings.Join(parts, ", ")
}
