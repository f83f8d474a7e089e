// Package types provides type definitions for structured data used throughout the cv-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// CandidateRecord is the structured candidate data handed to the layout engine.
// Every field is optional; an absent field decodes to its zero value.
type CandidateRecord struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Location   string            `json:"location"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Activities []string          `json:"activities"`
}

// EducationEntry is one row of the academic table
type EducationEntry struct {
	Degree    string `json:"degree"`
	Institute string `json:"institute"`
	Year      string `json:"year"`
}

// ExperienceEntry is one employment entry, rendered as a bordered role block
type ExperienceEntry struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

// Header returns the "role | company | dates" line shown in the role header.
// Empty fields keep their separator.
func (e ExperienceEntry) Header() string {
	return e.Role + " | " + e.Company + " | " + e.Dates
}

// ContactLine returns "email | phone | location". Empty fields keep their separator.
func (c *CandidateRecord) ContactLine() string {
	return c.Email + " | " + c.Phone + " | " + c.Location
}

// FileStem returns a filesystem-friendly stem derived from the candidate name,
// e.g. "Jane Doe" -> "JANE_DOE". Returns "CANDIDATE" when the name is blank.
func (c *CandidateRecord) FileStem() string {
	fields := strings.Fields(c.Name)
	if len(fields) == 0 {
		return "CANDIDATE"
	}
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte('_')
		}
		for _, r := range f {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
				sb.WriteRune(r)
			}
		}
	}
	stem := strings.Trim(sb.String(), "_")
	if stem == "" {
		return "CANDIDATE"
	}
	return strings.ToUpper(stem)
}

// IntroBlock is the fixed introductory role block placed at the top of the
// experience section, ahead of the candidate's own roles.
type IntroBlock struct {
	Header  string   `json:"header"`
	Summary string   `json:"summary,omitempty"`
	Bullets []string `json:"bullets"`
}

// DefaultIntroBlock returns the VerveSchool fellowship block.
func DefaultIntroBlock() IntroBlock {
	return IntroBlock{
		Header:  "Sales Fellow | VerveSchool Talent Fund | 2026",
		Summary: "VerveSchool helps growth stage startups hire and develop early career sales talent.",
		Bullets: []string{
			"Undergoing training in buyer psychology, lead qualification, and high volume pipeline building.",
			"Prepared for on the job sales coaching and founder mentorship.",
		},
	}
}
