// Package history analyzes a user's application timeline for inactivity.
package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/JayRay15/apptrack/pkg/models"
)

// DefaultGapDays is the inactivity threshold used when callers have no
// configured preference.
const DefaultGapDays = 7

const msPerDay = 24 * 60 * 60 * 1000

// IdentifyApplicationGaps scans an application history and reports every
// window of gapDays or more between consecutive applications. Records with
// no usable date are ignored; fewer than two dated records means there is
// nothing to compare and nil is returned. Gaps come back in chronological
// order and never overlap, since only adjacent pairs in sorted order are
// compared.
func IdentifyApplicationGaps(applications []models.JobApplicationRecord, gapDays int) []models.GapRecord {
	type dated struct {
		at time.Time
	}

	var timeline []dated
	for _, app := range applications {
		if at, ok := app.AppliedOn(); ok {
			timeline = append(timeline, dated{at: at})
		}
	}
	if len(timeline) < 2 {
		return nil
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].at.Before(timeline[j].at)
	})

	var gaps []models.GapRecord
	for i := 1; i < len(timeline); i++ {
		prev, curr := timeline[i-1], timeline[i]
		daysDiff := int(curr.at.Sub(prev.at).Milliseconds() / msPerDay)
		if daysDiff < gapDays {
			continue
		}
		gaps = append(gaps, models.GapRecord{
			StartDate:   prev.at,
			EndDate:     curr.at,
			DaysMissing: daysDiff,
			Suggestion: fmt.Sprintf(
				"No applications logged for %d days. Did you forget to track some applications?",
				daysDiff,
			),
		})
	}

	return gaps
}
