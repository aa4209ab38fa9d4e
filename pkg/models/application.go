package models

import "time"

// ParsedApplication is the structured record produced from one confirmation
// email. Title and Company always carry a display value once a platform was
// detected; extraction failures are filled with sentinel defaults.
type ParsedApplication struct {
	Platform      string    `json:"platform"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location,omitempty"`
	AppliedDate   time.Time `json:"applied_date"`
	SourceEmailID string    `json:"source_email_id,omitempty"`
}

// ParseResult is the outcome of running one EmailRecord through the pipeline.
// Exactly one of JobDetails/Error is set.
type ParseResult struct {
	Success       bool               `json:"success"`
	Platform      string             `json:"platform,omitempty"`
	JobDetails    *ParsedApplication `json:"job_details,omitempty"`
	Error         string             `json:"error,omitempty"`
	SourceEmailID string             `json:"source_email_id,omitempty"`
}

// JobApplicationRecord is the read-only shape duplicate detection and gap
// analysis accept. Persisted records expose up to three date fields depending
// on how they were created; AppliedOn picks the first available.
type JobApplicationRecord struct {
	Title           string
	Company         string
	ApplicationDate *time.Time
	AppliedDate     *time.Time
	CreatedAt       *time.Time
}

// AppliedOn returns the record's effective application date, preferring
// ApplicationDate, then AppliedDate, then CreatedAt. ok is false when the
// record carries no date at all.
func (r JobApplicationRecord) AppliedOn() (t time.Time, ok bool) {
	switch {
	case r.ApplicationDate != nil:
		return *r.ApplicationDate, true
	case r.AppliedDate != nil:
		return *r.AppliedDate, true
	case r.CreatedAt != nil:
		return *r.CreatedAt, true
	}
	return time.Time{}, false
}

// GapRecord describes one inactivity window found in an application history.
type GapRecord struct {
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	DaysMissing int       `json:"days_missing"`
	Suggestion  string    `json:"suggestion"`
}
