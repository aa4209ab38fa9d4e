package models

import "time"

// EmailRecord is a single confirmation email handed to the parsing pipeline.
// Body must already be plain text; the ingest layer strips HTML before
// building a record.
type EmailRecord struct {
	MessageID    string     // opaque provider message id, may be empty
	Sender       string     // raw From address
	Subject      string
	Body         string     // plain text, HTML already stripped
	ReceivedDate *time.Time // nil when the provider gave no date
}
