package ingest

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"
)

// RawEmail is one message pulled from the mailbox before HTML stripping.
type RawEmail struct {
	UID       uint32
	MessageID string
	From      string
	Subject   string
	Date      time.Time
	BodyHTML  string
	BodyText  string
}

// FetcherConfig configuration for the IMAP fetcher
type FetcherConfig struct {
	Email       string
	Password    string
	Server      string // host:port
	DialTimeout time.Duration
}

// Fetcher pulls new messages from a single IMAP mailbox.
type Fetcher struct {
	config FetcherConfig
	client *client.Client
	logger *slog.Logger
}

// NewFetcher creates a fetcher for one account.
func NewFetcher(cfg FetcherConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		config: cfg,
		logger: logger.With("email", cfg.Email),
	}
}

// Connect dials the IMAP server, logs in and selects INBOX.
func (f *Fetcher) Connect(ctx context.Context) error {
	if f.client != nil {
		return nil
	}

	f.logger.Info("connecting to IMAP server", "server", f.config.Server)

	timeout := f.config.DialTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", f.config.Server, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	imapClient, err := client.New(conn)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create IMAP client: %w", err)
	}

	if err := imapClient.Login(f.config.Email, f.config.Password); err != nil {
		imapClient.Logout()
		return fmt.Errorf("failed to login: %w", err)
	}

	if _, err := imapClient.Select("INBOX", true); err != nil {
		imapClient.Logout()
		return fmt.Errorf("failed to select INBOX: %w", err)
	}

	f.client = imapClient
	f.logger.Info("connected to IMAP server")
	return nil
}

// FetchSince fetches messages with UID > sinceUID.
func (f *Fetcher) FetchSince(ctx context.Context, sinceUID uint32) ([]*RawEmail, error) {
	if f.client == nil {
		return nil, fmt.Errorf("not connected")
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddRange(sinceUID+1, 0) // 0 means * (all)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchUid, section.FetchItem()}

	messages := make(chan *imap.Message, 100)
	done := make(chan error, 1)

	go func() {
		done <- f.client.UidFetch(seqSet, items, messages)
	}()

	var emails []*RawEmail
	for msg := range messages {
		email, err := f.parseMessage(msg, section)
		if err != nil {
			f.logger.Warn("failed to parse message", "uid", msg.Uid, "error", err)
			continue
		}
		emails = append(emails, email)
	}

	if err := <-done; err != nil {
		return emails, fmt.Errorf("failed to fetch: %w", err)
	}

	return emails, nil
}

// parseMessage parses an IMAP message into RawEmail
func (f *Fetcher) parseMessage(msg *imap.Message, section *imap.BodySectionName) (*RawEmail, error) {
	email := &RawEmail{UID: msg.Uid}

	if msg.Envelope != nil {
		email.Subject = msg.Envelope.Subject
		email.Date = msg.Envelope.Date
		email.MessageID = msg.Envelope.MessageId

		if len(msg.Envelope.From) > 0 {
			email.From = msg.Envelope.From[0].Address()
		}
	}

	bodyReader := msg.GetBody(section)
	if bodyReader == nil {
		return email, nil
	}

	mr, err := mail.CreateReader(bodyReader)
	if err != nil {
		return email, fmt.Errorf("failed to create mail reader: %w", err)
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			f.logger.Warn("failed to read part", "uid", msg.Uid, "error", err)
			break
		}

		h, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		ct, _, _ := h.ContentType()
		body, err := io.ReadAll(part.Body)
		if err != nil {
			continue
		}

		switch {
		case strings.HasPrefix(ct, "text/html"):
			email.BodyHTML = string(body)
		case strings.HasPrefix(ct, "text/plain"):
			email.BodyText = string(body)
		}
	}

	return email, nil
}

// Close logs out from the server.
func (f *Fetcher) Close() {
	if f.client == nil {
		return
	}
	f.client.Logout()
	f.client = nil
}
