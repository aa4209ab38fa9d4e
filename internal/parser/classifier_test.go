package parser

import "testing"

func TestClassify_SenderDomains(t *testing.T) {
	c := NewClassifier(DefaultRegistry())

	tests := []struct {
		sender  string
		content string
		want    string
	}{
		{"jobs-noreply@linkedin.com", "anything at all", "LinkedIn"},
		{"LinkedIn <jobs-noreply@LINKEDIN.COM>", "", "LinkedIn"},
		{"no-reply@indeed.com", "", "Indeed"},
		{"apply@indeedemail.com", "", "Indeed"},
		{"noreply@glassdoor.com", "", "Glassdoor"},
		{"alerts@ziprecruiter.com", "", "ZipRecruiter"},
		{"random@unknown.tld", "nothing recognizable here", ""},
		{"", "", ""},
	}
	for _, tc := range tests {
		if got := c.Classify(tc.sender, tc.content); got != tc.want {
			t.Errorf("Classify(%q, %q) = %q; want %q", tc.sender, tc.content, got, tc.want)
		}
	}
}

func TestClassify_ContentSignatures(t *testing.T) {
	c := NewClassifier(DefaultRegistry())

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"linkedin sent-to template", "Your application was sent to Google.", "LinkedIn"},
		{"indeed template", "Indeed Application: Backend Engineer", "Indeed"},
		{"ziprecruiter template", "Good news! Your resume was sent to Initech.", "ZipRecruiter"},
		{"no signature", "Lunch on Friday?", ""},
	}
	for _, tc := range tests {
		if got := c.Classify("someone@example.com", tc.content); got != tc.want {
			t.Errorf("%s: Classify = %q; want %q", tc.name, got, tc.want)
		}
	}
}

// A domain hit on an earlier rule wins even when a later rule's signature
// would also match: registry declaration order is the tie-break.
func TestClassify_RegistryOrderWins(t *testing.T) {
	c := NewClassifier(DefaultRegistry())

	got := c.Classify("jobs-noreply@linkedin.com", "Applied on Indeed")
	if got != "LinkedIn" {
		t.Errorf("Classify = %q; want LinkedIn (declaration order tie-break)", got)
	}
}
