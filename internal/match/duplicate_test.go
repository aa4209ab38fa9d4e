package match

import (
	"testing"
	"time"

	"github.com/JayRay15/apptrack/pkg/models"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func record(title, company string, applied *time.Time) models.JobApplicationRecord {
	return models.JobApplicationRecord{Title: title, Company: company, AppliedDate: applied}
}

func TestAreDuplicates(t *testing.T) {
	tests := []struct {
		name   string
		a, b   models.JobApplicationRecord
		window int
		want   bool
	}{
		{
			name:   "same job one day apart",
			a:      record("Full Stack Developer", "Microsoft", datePtr(2025, 12, 12)),
			b:      record("Full Stack Developer", "Microsoft", datePtr(2025, 12, 13)),
			window: 7,
			want:   true,
		},
		{
			name:   "same job outside date window",
			a:      record("Full Stack Developer", "Microsoft", datePtr(2025, 12, 12)),
			b:      record("Full Stack Developer", "Microsoft", datePtr(2025, 12, 22)),
			window: 7,
			want:   false,
		},
		{
			name:   "company suffix drift",
			a:      record("Backend Engineer", "Google", datePtr(2026, 1, 2)),
			b:      record("Backend Engineer", "Google LLC", datePtr(2026, 1, 3)),
			window: 7,
			want:   true,
		},
		{
			name:   "title abbreviation drift",
			a:      record("Senior Engineer", "Stripe", datePtr(2026, 1, 2)),
			b:      record("Sr. Senior Engineer", "Stripe", datePtr(2026, 1, 2)),
			window: 7,
			want:   true,
		},
		{
			name:   "different companies never match",
			a:      record("Backend Engineer", "Google", datePtr(2026, 1, 2)),
			b:      record("Backend Engineer", "Netflix", datePtr(2026, 1, 2)),
			window: 7,
			want:   false,
		},
		{
			name:   "same company different role",
			a:      record("Backend Engineer", "Google", datePtr(2026, 1, 2)),
			b:      record("Product Manager", "Google", datePtr(2026, 1, 2)),
			window: 7,
			want:   false,
		},
		{
			name:   "missing date never blocks a match",
			a:      record("Backend Engineer", "Google", nil),
			b:      record("Backend Engineer", "Google", datePtr(2026, 1, 2)),
			window: 7,
			want:   true,
		},
	}
	for _, tc := range tests {
		if got := AreDuplicates(tc.a, tc.b, tc.window); got != tc.want {
			t.Errorf("%s: AreDuplicates = %v; want %v", tc.name, got, tc.want)
		}
		// The predicate must not depend on argument order.
		if got := AreDuplicates(tc.b, tc.a, tc.window); got != tc.want {
			t.Errorf("%s (swapped): AreDuplicates = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestAreDuplicates_DateFieldPreference(t *testing.T) {
	// A record created long after the fact still matches when its
	// application date is inside the window.
	a := models.JobApplicationRecord{
		Title:           "Data Engineer",
		Company:         "Snowflake",
		ApplicationDate: datePtr(2026, 2, 1),
		CreatedAt:       datePtr(2026, 3, 15),
	}
	b := record("Data Engineer", "Snowflake", datePtr(2026, 2, 3))

	if !AreDuplicates(a, b, 7) {
		t.Error("AreDuplicates = false; want true (ApplicationDate preferred over CreatedAt)")
	}
}
