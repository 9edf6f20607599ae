package derive

import (
	"github.com/shopspring/decimal"

	"github.com/propforma/propforma/internal/domain"
)

// TimelineMetrics summarizes a closing-date timeline for report display.
// Printable keeps only milestones whose status is not stale; staleness is
// judged purely on the supplied status, never recomputed from the clock.
type TimelineMetrics struct {
	Printable       []domain.Milestone
	TotalCount      int
	CompletedCount  int
	UpcomingCount   int
	FilteredCount   int
	ProgressPercent decimal.Decimal
}

// Timeline filters past-due/overdue milestones out of the printable table
// and counts progress across the full list.
func Timeline(milestones []domain.Milestone) TimelineMetrics {
	m := TimelineMetrics{TotalCount: len(milestones)}
	for _, ms := range milestones {
		switch {
		case ms.Status.Stale():
			m.FilteredCount++
			continue
		case ms.Status == domain.MilestoneCompleted:
			m.CompletedCount++
		default:
			m.UpcomingCount++
		}
		m.Printable = append(m.Printable, ms)
	}
	if m.TotalCount > 0 {
		m.ProgressPercent = ratio(decimal.NewFromInt(int64(m.CompletedCount)), decimal.NewFromInt(int64(m.TotalCount)))
	}
	return m
}
