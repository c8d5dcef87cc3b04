package service

import (
	"math"
	"time"

	"github.com/alanalzi/jalin-alam-project/internal/model"
)

// Schedule statuses derived from a product deadline. Distinct from the
// free-text status column, which users set by hand.
const (
	ScheduleOngoing = "Ongoing"
	ScheduleLate    = "Late"
)

// OverallProgress returns the rounded arithmetic mean of the checklist
// percentages, or 0 for an empty checklist. Recomputed on every read,
// never stored.
func OverallProgress(items []model.ProductChecklistItem) int {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, item := range items {
		sum += item.Percentage
	}
	return int(math.Round(float64(sum) / float64(len(items))))
}

// ScheduleStatus compares the deadline against now's calendar day.
// A product is late only once the deadline day has fully passed; a missing
// deadline means ongoing.
func ScheduleStatus(deadline *model.Date, now time.Time) string {
	if deadline == nil {
		return ScheduleOngoing
	}
	if deadline.Before(model.DateOf(now)) {
		return ScheduleLate
	}
	return ScheduleOngoing
}
