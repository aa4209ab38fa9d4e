package match

import (
	"math"
	"strings"

	"github.com/JayRay15/apptrack/pkg/models"
)

const (
	// companyThreshold is the similarity a pair of normalized company names
	// must exceed to be considered the same employer.
	companyThreshold = 0.8
	// titleThreshold is looser than the company gate: titles drift more
	// between platforms than company names do.
	titleThreshold = 0.7

	// DefaultDateWindowDays bounds how far apart two applications may be and
	// still count as one submission.
	DefaultDateWindowDays = 7
)

// AreDuplicates reports whether two application records describe the same
// real-world submission. Three gates, cheapest first: company, then title,
// then date proximity. The date gate only applies when both records carry a
// date; a record with no date never blocks a duplicate verdict. The result
// is symmetric in a and b.
//
// This is a heuristic, not entity resolution: false positives and negatives
// are accepted, and the predicate is not transitive, so callers clustering
// more than two records must not assume it is.
func AreDuplicates(a, b models.JobApplicationRecord, dateWindowDays int) bool {
	if !fieldsMatch(a.Company, b.Company, companyThreshold) {
		return false
	}
	if !fieldsMatch(a.Title, b.Title, titleThreshold) {
		return false
	}

	da, okA := a.AppliedOn()
	db, okB := b.AppliedOn()
	if okA && okB {
		days := math.Abs(da.Sub(db).Hours() / 24)
		if days > float64(dateWindowDays) {
			return false
		}
	}

	return true
}

// fieldsMatch applies the three-way comparison used by both gates: equal
// after normalization, one a substring of the other, or edit-distance
// similarity above the threshold.
func fieldsMatch(x, y string, threshold float64) bool {
	nx, ny := Normalize(x), Normalize(y)
	if nx == ny {
		return true
	}
	if nx != "" && ny != "" && (strings.Contains(nx, ny) || strings.Contains(ny, nx)) {
		return true
	}
	return Similarity(nx, ny) > threshold
}
