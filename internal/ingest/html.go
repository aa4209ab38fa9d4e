package ingest

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLStripper converts HTML email bodies to the plain text the parsing
// pipeline expects. The pipeline's patterns are line oriented, so block
// elements become line breaks.
type HTMLStripper struct {
	spaces    *regexp.Regexp
	newlines  *regexp.Regexp
	invisible *regexp.Regexp
}

// NewHTMLStripper creates a new HTML stripper
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		spaces:   regexp.MustCompile(`[^\S\n]+`),
		newlines: regexp.MustCompile(`\n{3,}`),
		// Zero-width and other invisible characters that break substring matching
		invisible: regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}\x{00AD}\x{2060}-\x{2064}]+`),
	}
}

// Strip converts HTML to clean plain text. Non-HTML input passes through
// with the same whitespace cleanup applied.
func (s *HTMLStripper) Strip(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, head, meta, link").Remove()

	// Block elements separate lines in the text rendering
	doc.Find("p, div, br, h1, h2, h3, h4, h5, h6, li, tr").Each(func(i int, sel *goquery.Selection) {
		sel.PrependHtml("\n")
	})

	text := doc.Text()
	text = s.invisible.ReplaceAllString(text, "")
	text = s.spaces.ReplaceAllString(text, " ")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	text = strings.Join(lines, "\n")
	text = s.newlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text), nil
}
