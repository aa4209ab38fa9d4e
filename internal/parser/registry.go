package parser

import "regexp"

// FieldPattern is one step of an extraction chain: a pattern plus the index
// of the capture group that carries the field value.
type FieldPattern struct {
	Regex *regexp.Regexp
	Group int
}

// PlatformRule describes how one job platform's confirmation emails are
// recognized and mined. SenderDomains are matched as case-insensitive
// substrings of the From address; ContentSignatures are tried against the
// combined subject+body when no domain matches.
type PlatformRule struct {
	Name              string
	SenderDomains     []string
	ContentSignatures []*regexp.Regexp
	TitlePatterns     []FieldPattern
	CompanyPatterns   []FieldPattern
	LocationPatterns  []FieldPattern
}

// Registry is an ordered, immutable set of platform rules. Order matters:
// classification walks the rules front to back and the first match wins,
// so more specific platforms must be declared before catch-all ones.
type Registry struct {
	rules []PlatformRule
}

// NewRegistry builds a registry from rules in the given order.
func NewRegistry(rules []PlatformRule) *Registry {
	return &Registry{rules: rules}
}

// Rules returns the rules in declaration order.
func (r *Registry) Rules() []PlatformRule {
	return r.rules
}

// Lookup returns the rule for a platform name.
func (r *Registry) Lookup(name string) (PlatformRule, bool) {
	for _, rule := range r.rules {
		if rule.Name == name {
			return rule, true
		}
	}
	return PlatformRule{}, false
}

// DefaultRegistry returns the built-in rule set for the platforms whose
// confirmation emails we understand. Adding a platform means appending one
// rule here; there is no runtime registration.
func DefaultRegistry() *Registry {
	return NewRegistry([]PlatformRule{
		{
			Name:          "LinkedIn",
			SenderDomains: []string{"linkedin.com"},
			ContentSignatures: []*regexp.Regexp{
				regexp.MustCompile(`(?i)your application was sent to`),
				regexp.MustCompile(`(?i)you applied to .+ at .+`),
				regexp.MustCompile(`(?i)linkedin job alert`),
			},
			TitlePatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)you applied to ([^\n]+?) at [^\n]+`), 1},
				{regexp.MustCompile(`(?i)your application was sent to [^\n]+? for (?:the )?([^\n.!]+)`), 1},
				{regexp.MustCompile(`(?i)application for ([^\n]+?)(?: at | was | has )`), 1},
			},
			CompanyPatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)you applied to [^\n]+? at ([^\n.!,]+)`), 1},
				{regexp.MustCompile(`(?i)your application was sent to ([^\n.!]+?)(?: for |[.!\n]|$)`), 1},
				{regexp.MustCompile(`(?i)application for [^\n]+? at ([^\n.!,]+)`), 1},
			},
			LocationPatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)location[:\s]+([^\n]+)`), 1},
				{regexp.MustCompile(`\(([A-Za-z .'-]+,\s*[A-Z]{2}(?:,\s*[A-Za-z ]+)?)\)`), 1},
			},
		},
		{
			Name:          "Indeed",
			SenderDomains: []string{"indeed.com", "indeedemail.com"},
			ContentSignatures: []*regexp.Regexp{
				regexp.MustCompile(`(?i)indeed application`),
				regexp.MustCompile(`(?i)application submitted`),
				regexp.MustCompile(`(?i)applied on indeed`),
			},
			TitlePatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)indeed application:\s*([^\n]+)`), 1},
				{regexp.MustCompile(`(?i)you (?:have )?applied to ([^\n]+?) at [^\n]+`), 1},
				{regexp.MustCompile(`(?i)application submitted[:\s]+([^\n]+)`), 1},
			},
			CompanyPatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)you (?:have )?applied to [^\n]+? at ([^\n.!,]+)`), 1},
				{regexp.MustCompile(`(?i)company[:\s]+([^\n]+)`), 1},
				{regexp.MustCompile(`(?i)\bat ([^\n]+?) (?:in [A-Z]|[-\x{2013}])`), 1},
			},
			LocationPatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)location[:\s]+([^\n]+)`), 1},
				{regexp.MustCompile(`[-\x{2013}]\s*([A-Za-z .'-]+,\s*[A-Z]{2})\b`), 1},
			},
		},
		{
			Name:          "Glassdoor",
			SenderDomains: []string{"glassdoor.com"},
			ContentSignatures: []*regexp.Regexp{
				regexp.MustCompile(`(?i)glassdoor`),
				regexp.MustCompile(`(?i)your application (?:to|for)`),
			},
			TitlePatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)your application for (?:the )?([^\n]+?)(?: at | position| has )`), 1},
				{regexp.MustCompile(`(?i)applied (?:to|for) ([^\n]+?) at [^\n]+`), 1},
			},
			CompanyPatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)your application (?:to|for) [^\n]+? at ([^\n.!,]+)`), 1},
				{regexp.MustCompile(`(?i)\bat ([^\n.!,]+?) has been (?:received|submitted)`), 1},
			},
			LocationPatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)location[:\s]+([^\n]+)`), 1},
			},
		},
		{
			Name:          "ZipRecruiter",
			SenderDomains: []string{"ziprecruiter.com"},
			ContentSignatures: []*regexp.Regexp{
				regexp.MustCompile(`(?i)ziprecruiter`),
				regexp.MustCompile(`(?i)your (?:application|resume) was sent`),
			},
			TitlePatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)applied (?:to|for) (?:the )?([^\n]+?) (?:position|job|role|opening)`), 1},
				{regexp.MustCompile(`(?i)your (?:application|resume) was sent to [^\n]+? for (?:the )?([^\n.!]+)`), 1},
			},
			CompanyPatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)your (?:application|resume) was sent to ([^\n.!]+?)(?: for |[.!\n]|$)`), 1},
				{regexp.MustCompile(`(?i)(?:position|job|role|opening) at ([^\n.!,]+)`), 1},
			},
			LocationPatterns: []FieldPattern{
				{regexp.MustCompile(`(?i)location[:\s]+([^\n]+)`), 1},
				{regexp.MustCompile(`(?i)\bin ([A-Za-z .'-]+,\s*[A-Z]{2})\b`), 1},
			},
		},
	})
}
