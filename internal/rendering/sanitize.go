package rendering

import (
	"strings"

	"github.com/verveschool/cv-builder/internal/types"
)

// normalizer maps typographic punctuation to plain ASCII
var normalizer = strings.NewReplacer(
	"\u2013", "-", // en dash
	"\u2014", "--", // em dash
	"\u2018", "'", // left single quote
	"\u2019", "'", // right single quote
	"\u201c", `"`, // left double quote
	"\u201d", `"`, // right double quote
)

// NormalizeText replaces typographic dashes and curly quotes with their ASCII
// equivalents. Strings without such characters are returned unchanged.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	return normalizer.Replace(text)
}

// SanitizeCandidate returns a deep copy of rec with NormalizeText applied to
// every string value. A nil record yields the empty record.
func SanitizeCandidate(rec *types.CandidateRecord) types.CandidateRecord {
	if rec == nil {
		return types.CandidateRecord{}
	}

	out := types.CandidateRecord{
		Name:       NormalizeText(rec.Name),
		Email:      NormalizeText(rec.Email),
		Phone:      NormalizeText(rec.Phone),
		Location:   NormalizeText(rec.Location),
		Activities: normalizeAll(rec.Activities),
	}

	if rec.Education != nil {
		out.Education = make([]types.EducationEntry, len(rec.Education))
		for i, e := range rec.Education {
			out.Education[i] = types.EducationEntry{
				Degree:    NormalizeText(e.Degree),
				Institute: NormalizeText(e.Institute),
				Year:      NormalizeText(e.Year),
			}
		}
	}

	if rec.Experience != nil {
		out.Experience = make([]types.ExperienceEntry, len(rec.Experience))
		for i, e := range rec.Experience {
			out.Experience[i] = types.ExperienceEntry{
				Role:    NormalizeText(e.Role),
				Company: NormalizeText(e.Company),
				Dates:   NormalizeText(e.Dates),
				Bullets: normalizeAll(e.Bullets),
			}
		}
	}

	return out
}

// SanitizeIntro applies NormalizeText to every string of the intro block
func SanitizeIntro(intro types.IntroBlock) types.IntroBlock {
	return types.IntroBlock{
		Header:  NormalizeText(intro.Header),
		Summary: NormalizeText(intro.Summary),
		Bullets: normalizeAll(intro.Bullets),
	}
}

func normalizeAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = NormalizeText(s)
	}
	return out
}
