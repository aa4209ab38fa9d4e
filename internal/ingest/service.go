package ingest

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/JayRay15/apptrack/internal/config"
	"github.com/JayRay15/apptrack/internal/database"
	"github.com/JayRay15/apptrack/internal/history"
	"github.com/JayRay15/apptrack/internal/match"
	"github.com/JayRay15/apptrack/internal/parser"
	"github.com/JayRay15/apptrack/pkg/models"
)

// reconnectDelay is how long a failed scan waits before the fetcher is
// dialed again.
const reconnectDelay = 10 * time.Second

// Service owns the I/O side of email ingestion: it polls the mailbox,
// feeds each message through the parsing pipeline, drops duplicates and
// persists the rest. The pipeline itself stays pure; everything with a
// side effect lives here.
type Service struct {
	cfg      *config.Config
	db       *database.DB
	fetcher  *Fetcher
	stripper *HTMLStripper
	pipeline *parser.Pipeline
	logger   *slog.Logger
}

// NewService wires an ingestion service.
func NewService(cfg *config.Config, db *database.DB, logger *slog.Logger) *Service {
	return &Service{
		cfg: cfg,
		db:  db,
		fetcher: NewFetcher(FetcherConfig{
			Email:       cfg.IMAPEmail,
			Password:    cfg.IMAPPassword,
			Server:      cfg.IMAPServer,
			DialTimeout: cfg.DialTimeout,
		}, logger),
		stripper: NewHTMLStripper(),
		pipeline: parser.NewPipeline(parser.DefaultRegistry()),
		logger:   logger,
	}
}

// Run scans immediately, then on every poll interval until the context is
// cancelled. A failed scan drops the connection and retries on the next
// cycle after a short delay.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()
	defer s.fetcher.Close()

	for {
		if err := s.scan(ctx); err != nil {
			s.logger.Error("scan failed", "error", err)
			s.fetcher.Close()

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(reconnectDelay):
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// scan processes every message that arrived since the last scan.
func (s *Service) scan(ctx context.Context) error {
	if err := s.fetcher.Connect(ctx); err != nil {
		return err
	}

	lastUID, err := s.db.GetLastUID(ctx, "INBOX")
	if err != nil {
		return err
	}

	emails, err := s.fetcher.FetchSince(ctx, lastUID)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return nil
	}

	var imported, duplicates, manualReview int
	maxUID := lastUID

	for _, raw := range emails {
		if raw.UID > maxUID {
			maxUID = raw.UID
		}

		record, err := s.buildRecord(raw)
		if err != nil {
			s.logger.Warn("failed to build email record", "uid", raw.UID, "error", err)
			continue
		}

		result := s.pipeline.Parse(record)
		if !result.Success {
			// Not an error: unmatched emails go to the manual-review pile.
			manualReview++
			s.logger.Debug("no platform matched", "uid", raw.UID, "sender", record.Sender)
			continue
		}

		stored, err := s.store(ctx, result.JobDetails)
		if err != nil {
			return err
		}
		if stored {
			imported++
			s.logger.Info("imported application",
				"platform", result.Platform,
				"title", result.JobDetails.Title,
				"company", result.JobDetails.Company,
			)
		} else {
			duplicates++
		}
	}

	if err := s.db.SetLastUID(ctx, "INBOX", maxUID); err != nil {
		return err
	}

	s.logger.Info("scan completed",
		"imported", imported,
		"duplicates", duplicates,
		"manual_review", manualReview,
	)

	return s.reportGaps(ctx)
}

// buildRecord converts a raw message into what the pipeline accepts,
// stripping HTML when no plain-text part is available.
func (s *Service) buildRecord(raw *RawEmail) (models.EmailRecord, error) {
	body := raw.BodyText
	if body == "" && raw.BodyHTML != "" {
		stripped, err := s.stripper.Strip(raw.BodyHTML)
		if err != nil {
			return models.EmailRecord{}, err
		}
		body = stripped
	}

	record := models.EmailRecord{
		MessageID: raw.MessageID,
		Sender:    raw.From,
		Subject:   raw.Subject,
		Body:      body,
	}
	if !raw.Date.IsZero() {
		date := raw.Date
		record.ReceivedDate = &date
	}
	return record, nil
}

// store persists a parsed application unless it duplicates a recently
// stored one. Returns false when the record was dropped as a duplicate.
func (s *Service) store(ctx context.Context, job *models.ParsedApplication) (bool, error) {
	since := job.AppliedDate.AddDate(0, 0, -s.cfg.DedupWindowDays)
	recent, err := s.db.RecentApplications(ctx, since)
	if err != nil {
		return false, err
	}

	candidate := models.JobApplicationRecord{
		Title:       job.Title,
		Company:     job.Company,
		AppliedDate: &job.AppliedDate,
	}
	for _, existing := range recent {
		if match.AreDuplicates(candidate, existing.Record(), s.cfg.DedupWindowDays) {
			s.logger.Debug("dropping duplicate application",
				"title", job.Title,
				"company", job.Company,
			)
			return false, nil
		}
	}

	stored := &models.StoredApplication{
		Platform:    job.Platform,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		AppliedDate: job.AppliedDate,
	}
	if job.SourceEmailID != "" {
		stored.SourceEmailID = sql.NullString{String: job.SourceEmailID, Valid: true}
	}

	err = s.db.CreateApplication(ctx, stored)
	if errors.Is(err, database.ErrAlreadyExists) {
		// Same source email seen on an earlier scan.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// reportGaps logs inactivity windows in the stored history. The dashboard
// renders these for the user; the service only surfaces them.
func (s *Service) reportGaps(ctx context.Context) error {
	apps, err := s.db.ListApplications(ctx)
	if err != nil {
		return err
	}

	records := make([]models.JobApplicationRecord, 0, len(apps))
	for _, app := range apps {
		records = append(records, app.Record())
	}

	for _, gap := range history.IdentifyApplicationGaps(records, s.cfg.GapDays) {
		s.logger.Warn("application gap detected",
			"start", gap.StartDate.Format(time.DateOnly),
			"end", gap.EndDate.Format(time.DateOnly),
			"days_missing", gap.DaysMissing,
			"suggestion", gap.Suggestion,
		)
	}
	return nil
}
