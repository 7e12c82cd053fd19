package domain

// Category tells whether a platform hosts social or professional profiles.
type Category string

const (
	CategorySocial       Category = "social"
	CategoryProfessional Category = "professional"
)

// ErrorKind tags a probe that failed before any HTTP status was received.
type ErrorKind string

const (
	ErrorTimeout ErrorKind = "Timeout"
	ErrorNetwork ErrorKind = "NetworkError"
	ErrorOther   ErrorKind = "Other"
)

// ProbeTarget is one candidate profile URL to check.
type ProbeTarget struct {
	Platform string   `json:"platform"`
	URL      string   `json:"url"`
	Username string   `json:"username"`
	Category Category `json:"type"`
}

// ProbeOutcome is the result of checking exactly one ProbeTarget.
//
// Found implies StatusCode == 200. Error is only set when Found is false, and
// StatusCode is nil whenever Error is set.
type ProbeOutcome struct {
	Platform   string    `json:"platform"`
	URL        string    `json:"url"`
	Username   string    `json:"username,omitempty"`
	Category   Category  `json:"type"`
	Found      bool      `json:"found"`
	StatusCode *int      `json:"status_code,omitempty"`
	Error      ErrorKind `json:"error,omitempty"`
}

// Outcome starts a ProbeOutcome for t with Found=false and nothing recorded.
func (t ProbeTarget) Outcome() ProbeOutcome {
	return ProbeOutcome{
		Platform: t.Platform,
		URL:      t.URL,
		Username: t.Username,
		Category: t.Category,
	}
}

// ConfidenceGroups partitions outcomes by how likely they are to belong to
// the searched person.
type ConfidenceGroups struct {
	High   []ProbeOutcome `json:"high_confidence"`
	Medium []ProbeOutcome `json:"medium_confidence"`
	Low    []ProbeOutcome `json:"low_confidence"`
	Note   string         `json:"note"`
}

// Len is the number of outcomes across all tiers.
func (g ConfidenceGroups) Len() int {
	return len(g.High) + len(g.Medium) + len(g.Low)
}
