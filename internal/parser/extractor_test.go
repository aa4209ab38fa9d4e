package parser

import "testing"

func TestExtract_LinkedIn(t *testing.T) {
	e := NewExtractor(DefaultRegistry())

	tests := []struct {
		name        string
		content     string
		wantTitle   string
		wantCompany string
	}{
		{
			name:        "applied-to template",
			content:     "You applied to Senior Software Engineer at Google",
			wantTitle:   "Senior Software Engineer",
			wantCompany: "Google",
		},
		{
			name:        "application-sent template",
			content:     "Your application was sent to Stripe for the Staff Engineer role.",
			wantTitle:   "Staff Engineer role",
			wantCompany: "Stripe",
		},
	}
	for _, tc := range tests {
		got := e.Extract("LinkedIn", tc.content)
		if got.Title != tc.wantTitle {
			t.Errorf("%s: Title = %q; want %q", tc.name, got.Title, tc.wantTitle)
		}
		if got.Company != tc.wantCompany {
			t.Errorf("%s: Company = %q; want %q", tc.name, got.Company, tc.wantCompany)
		}
	}
}

func TestExtract_ChainFallback(t *testing.T) {
	e := NewExtractor(DefaultRegistry())

	// First Indeed title pattern misses, second one catches it.
	got := e.Extract("Indeed", "You applied to Data Analyst at Initech")
	if got.Title != "Data Analyst" {
		t.Errorf("Title = %q; want Data Analyst", got.Title)
	}
	if got.Company != "Initech" {
		t.Errorf("Company = %q; want Initech", got.Company)
	}
}

func TestExtract_LocationChain(t *testing.T) {
	e := NewExtractor(DefaultRegistry())

	got := e.Extract("LinkedIn", "You applied to SRE at Datadog\nLocation: New York, NY")
	if got.Location != "New York, NY" {
		t.Errorf("Location = %q; want New York, NY", got.Location)
	}
}

func TestExtract_UnknownPlatform(t *testing.T) {
	e := NewExtractor(DefaultRegistry())

	for _, platform := range []string{"", "Monster"} {
		got := e.Extract(platform, "You applied to SRE at Datadog")
		if got != (Fields{}) {
			t.Errorf("Extract(%q) = %+v; want zero Fields", platform, got)
		}
	}
}

func TestExtract_NoMatchLeavesFieldEmpty(t *testing.T) {
	e := NewExtractor(DefaultRegistry())

	got := e.Extract("LinkedIn", "Thanks for applying!")
	if got.Title != "" || got.Company != "" || got.Location != "" {
		t.Errorf("Extract = %+v; want all fields empty", got)
	}
}
