package parser

import "strings"

// Classifier decides which platform produced an email.
type Classifier struct {
	registry *Registry
}

// NewClassifier creates a classifier over the given registry.
func NewClassifier(registry *Registry) *Classifier {
	return &Classifier{registry: registry}
}

// Classify returns the name of the first platform whose rule matches the
// sender or the message content, or "" when nothing matches. For each rule
// the sender domains are tried first, then the content signatures; a hit on
// either short-circuits the remaining rules, so registry order is the
// tie-break between platforms. Empty sender and content are fine.
func (c *Classifier) Classify(sender, content string) string {
	sender = strings.ToLower(sender)

	for _, rule := range c.registry.Rules() {
		for _, domain := range rule.SenderDomains {
			if strings.Contains(sender, domain) {
				return rule.Name
			}
		}
		for _, sig := range rule.ContentSignatures {
			if sig.MatchString(content) {
				return rule.Name
			}
		}
	}

	return ""
}
