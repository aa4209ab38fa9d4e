package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/JayRay15/apptrack/pkg/models"
)

// ErrNotFound is returned when a record is not found
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when trying to insert a duplicate record
var ErrAlreadyExists = errors.New("record already exists")

// CreateApplication persists a parsed application. Rows keyed on the same
// source email id are ignored, so replaying a mailbox never double-inserts.
func (db *DB) CreateApplication(ctx context.Context, app *models.StoredApplication) error {
	query := `
		INSERT OR IGNORE INTO applications (platform, title, company, location, applied_date, source_email_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := db.ExecContext(ctx, query,
		app.Platform,
		app.Title,
		app.Company,
		app.Location,
		app.AppliedDate,
		app.SourceEmailID,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrAlreadyExists
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	app.ID = id
	app.CreatedAt = now
	return nil
}

// ListApplications returns the full history, oldest first.
func (db *DB) ListApplications(ctx context.Context) ([]models.StoredApplication, error) {
	var apps []models.StoredApplication
	query := `SELECT * FROM applications ORDER BY applied_date ASC`
	if err := db.SelectContext(ctx, &apps, query); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// RecentApplications returns applications applied on or after since, the
// candidate set for duplicate checks against a freshly parsed record.
func (db *DB) RecentApplications(ctx context.Context, since time.Time) ([]models.StoredApplication, error) {
	var apps []models.StoredApplication
	query := `SELECT * FROM applications WHERE applied_date >= ? ORDER BY applied_date ASC`
	if err := db.SelectContext(ctx, &apps, query, since); err != nil {
		return nil, fmt.Errorf("failed to list recent applications: %w", err)
	}
	return apps, nil
}

// GetLastUID returns the last processed IMAP UID for a mailbox, 0 when the
// mailbox has never been scanned.
func (db *DB) GetLastUID(ctx context.Context, mailbox string) (uint32, error) {
	var uid uint32
	query := `SELECT last_uid FROM imap_state WHERE mailbox = ?`
	err := db.GetContext(ctx, &uid, query, mailbox)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get last uid: %w", err)
	}
	return uid, nil
}

// SetLastUID records the last processed IMAP UID for a mailbox.
func (db *DB) SetLastUID(ctx context.Context, mailbox string, uid uint32) error {
	query := `
		INSERT INTO imap_state (mailbox, last_uid, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(mailbox) DO UPDATE SET last_uid = excluded.last_uid, updated_at = excluded.updated_at
	`
	if _, err := db.ExecContext(ctx, query, mailbox, uid, time.Now()); err != nil {
		return fmt.Errorf("failed to set last uid: %w", err)
	}
	return nil
}
