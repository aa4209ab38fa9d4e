package ingest

import "testing"

func TestStrip(t *testing.T) {
	s := NewHTMLStripper()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "blocks become lines",
			in:   "<div>You applied to SRE at Datadog</div><div>Location: New York, NY</div>",
			want: "You applied to SRE at Datadog\nLocation: New York, NY",
		},
		{
			name: "script and style dropped",
			in:   "<style>p{color:red}</style><p>Your application was sent to Stripe.</p><script>x()</script>",
			want: "Your application was sent to Stripe.",
		},
		{
			name: "whitespace collapsed",
			in:   "<p>You   applied   to \t Data Analyst at Initech</p>",
			want: "You applied to Data Analyst at Initech",
		},
		{
			name: "zero-width characters removed",
			in:   "<p>Goo​gle</p>",
			want: "Google",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}
	for _, tc := range tests {
		got, err := s.Strip(tc.in)
		if err != nil {
			t.Errorf("%s: Strip returned error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: Strip = %q; want %q", tc.name, got, tc.want)
		}
	}
}
