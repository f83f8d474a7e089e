package types

// Violation types reported by output validation
const (
	ViolationPageOverflow = "page_overflow"
	ViolationMissingText  = "missing_text"
	ViolationUnencodable  = "unencodable_text"
	ViolationUnreadable   = "unreadable_pdf"
	ViolationInvalidInput = "invalid_candidate"
)

// Violation severities
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Violation represents a single validation failure
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Page     *int   `json:"page,omitempty"`
}

// Violations represents a collection of validation failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of violations with the given severity
func (v *Violations) Count(severity string) int {
	if v == nil {
		return 0
	}
	n := 0
	for _, violation := range v.Violations {
		if violation.Severity == severity {
			n++
		}
	}
	return n
}
