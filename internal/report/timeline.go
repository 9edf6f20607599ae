package report

import (
	"time"

	"github.com/propforma/propforma/internal/derive"
	"github.com/propforma/propforma/internal/domain"
	"github.com/propforma/propforma/internal/numeric"
	"github.com/shopspring/decimal"
)

const milestoneDateLayout = "January 2, 2006"

var statusLabels = map[domain.MilestoneStatus]string{
	domain.MilestoneCompleted: "Completed",
	domain.MilestoneUpcoming:  "Upcoming",
}

// prepareTimeline builds the closing-date timeline payload. Stale rows
// (past-due/overdue at the time the caller computed statuses) are excluded
// from the printable table; staleness is never re-derived from the clock
// here.
func prepareTimeline(r rawInput) domain.ReportPayload {
	milestones := parseMilestones(r)
	m := derive.Timeline(milestones)

	rows := make([]map[string]any, 0, len(m.Printable))
	for _, ms := range m.Printable {
		label, ok := statusLabels[ms.Status]
		if !ok {
			label = string(ms.Status)
		}
		date := ""
		if !ms.Date.IsZero() {
			date = ms.Date.Format(milestoneDateLayout)
		}
		rows = append(rows, map[string]any{
			"name":           ms.Name,
			"date":           date,
			"status":         string(ms.Status),
			"statusLabel":    label,
			"description":    ms.Description,
			"isCompleted":    ms.Status == domain.MilestoneCompleted,
			"hasDescription": ms.Description != "",
		})
	}

	closing := ""
	if v, ok := r.lookup("closingDate", "closing"); ok {
		if t, err := parseMilestoneDate(v); err == nil {
			closing = t.Format(milestoneDateLayout)
		}
	}

	return domain.ReportPayload{
		"timeline": map[string]any{
			"closingDate":     closing,
			"hasClosingDate":  closing != "",
			"milestones":      rows,
			"hasMilestones":   len(rows) > 0,
			"totalCount":      numeric.FormatCount(decimal.NewFromInt(int64(m.TotalCount))),
			"completedCount":  numeric.FormatCount(decimal.NewFromInt(int64(m.CompletedCount))),
			"upcomingCount":   numeric.FormatCount(decimal.NewFromInt(int64(m.UpcomingCount))),
			"progressPercent": percent(m.ProgressPercent),
		},
	}
}

// parseMilestones decodes the milestone list from the raw request. Entries
// that are not maps are dropped; missing fields decode to zero values.
func parseMilestones(r rawInput) []domain.Milestone {
	v, ok := r.lookup("milestones", "timeline")
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]domain.Milestone); ok {
			return typed
		}
		return nil
	}
	var out []domain.Milestone
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ms := domain.Milestone{
			Name:   stringField(entry, "name", "title"),
			Status: domain.MilestoneStatus(stringField(entry, "status")),
		}
		ms.Description = stringField(entry, "description", "notes")
		if t, err := parseMilestoneDate(entry["date"]); err == nil {
			ms.Date = t
		}
		out = append(out, ms)
	}
	return out
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s
		}
	}
	return ""
}

// parseMilestoneDate accepts time.Time values and the date string formats
// the front-ends send.
func parseMilestoneDate(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		for _, layout := range []string{"2006-01-02", time.RFC3339, "01/02/2006", milestoneDateLayout} {
			if t, err := time.Parse(layout, x); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, domain.ErrBadDate
}
