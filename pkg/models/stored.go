package models

import (
	"database/sql"
	"time"
)

// StoredApplication is a persisted application row.
type StoredApplication struct {
	ID            int64          `db:"id"`
	Platform      string         `db:"platform"`
	Title         string         `db:"title"`
	Company       string         `db:"company"`
	Location      string         `db:"location"`
	AppliedDate   time.Time      `db:"applied_date"`
	SourceEmailID sql.NullString `db:"source_email_id"` // NULL for manually entered records
	CreatedAt     time.Time      `db:"created_at"`
}

// Record adapts a stored row to the shape duplicate detection and gap
// analysis accept.
func (s StoredApplication) Record() JobApplicationRecord {
	applied := s.AppliedDate
	created := s.CreatedAt
	return JobApplicationRecord{
		Title:       s.Title,
		Company:     s.Company,
		AppliedDate: &applied,
		CreatedAt:   &created,
	}
}
