package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/JayRay15/apptrack/pkg/models"
)

// Sentinel display values used when a platform was detected but a field
// could not be extracted. They are shown to the user for correction rather
// than silently dropping the record.
const (
	UnknownTitle   = "Unknown Position"
	UnknownCompany = "Unknown Company"
)

// ErrNoPlatform is the message reported when no platform rule matched.
const ErrNoPlatform = "Could not detect platform from email"

// subjectTitleFallback rescues a title from subject lines like
// "You applied for Backend Engineer" when no platform chain matched one.
var subjectTitleFallback = regexp.MustCompile(`(?i)(?:applied|application)\b[^\n]*?\b(?:for|to)[:\s]+(.+)`)

// Pipeline turns raw email records into structured application records by
// composing classification and extraction. It is pure except for reading
// the clock when a record has no received date.
type Pipeline struct {
	classifier *Classifier
	extractor  *Extractor
	now        func() time.Time
}

// NewPipeline builds a pipeline over the given registry.
func NewPipeline(registry *Registry) *Pipeline {
	return &Pipeline{
		classifier: NewClassifier(registry),
		extractor:  NewExtractor(registry),
		now:        time.Now,
	}
}

// Parse processes one email. It never fails on malformed input: absent
// fields are treated as empty, and the only unsuccessful outcome is no
// platform rule matching at all.
func (p *Pipeline) Parse(email models.EmailRecord) models.ParseResult {
	// Classification and extraction always see subject and body together;
	// confirmation templates spread the details across both.
	combined := email.Subject + "\n" + email.Body

	platform := p.classifier.Classify(email.Sender, combined)
	if platform == "" {
		return models.ParseResult{
			Success:       false,
			Error:         ErrNoPlatform,
			SourceEmailID: email.MessageID,
		}
	}

	fields := p.extractor.Extract(platform, combined)

	if fields.Title == "" && email.Subject != "" {
		if m := subjectTitleFallback.FindStringSubmatch(email.Subject); m != nil {
			fields.Title = strings.TrimSpace(m[1])
		}
	}

	if fields.Title == "" {
		fields.Title = UnknownTitle
	}
	if fields.Company == "" {
		fields.Company = UnknownCompany
	}

	appliedDate := p.now()
	if email.ReceivedDate != nil {
		appliedDate = *email.ReceivedDate
	}

	return models.ParseResult{
		Success:  true,
		Platform: platform,
		JobDetails: &models.ParsedApplication{
			Platform:      platform,
			Title:         fields.Title,
			Company:       fields.Company,
			Location:      fields.Location,
			AppliedDate:   appliedDate,
			SourceEmailID: email.MessageID,
		},
		SourceEmailID: email.MessageID,
	}
}
