package parser

import "strings"

// Fields holds the raw extraction output for one email. An empty string
// means no pattern in that field's chain matched.
type Fields struct {
	Title    string
	Company  string
	Location string
}

// Extractor pulls job details out of message text using a platform's
// extraction chains.
type Extractor struct {
	registry *Registry
}

// NewExtractor creates an extractor over the given registry.
func NewExtractor(registry *Registry) *Extractor {
	return &Extractor{registry: registry}
}

// Extract runs the platform's pattern chains against content. Each chain is
// tried in order and the first pattern yielding a non-empty trimmed capture
// wins; remaining patterns for that field are skipped. An unknown platform
// yields zero Fields.
func (e *Extractor) Extract(platform, content string) Fields {
	rule, ok := e.registry.Lookup(platform)
	if !ok {
		return Fields{}
	}

	return Fields{
		Title:    firstMatch(rule.TitlePatterns, content),
		Company:  firstMatch(rule.CompanyPatterns, content),
		Location: firstMatch(rule.LocationPatterns, content),
	}
}

func firstMatch(chain []FieldPattern, content string) string {
	for _, fp := range chain {
		m := fp.Regex.FindStringSubmatch(content)
		if len(m) <= fp.Group {
			continue
		}
		if v := strings.TrimSpace(m[fp.Group]); v != "" {
			return v
		}
	}
	return ""
}
