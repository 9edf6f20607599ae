package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadDate marks a milestone date that could not be parsed from any
// accepted format.
var ErrBadDate = errors.New("unrecognized date format")

// Tool identifies which calculator a report request belongs to.
type Tool string

const (
	ToolAffordability Tool = "affordability"
	ToolInvestor      Tool = "investor"
	ToolCommission    Tool = "commission"
	ToolNetSheet      Tool = "netsheet"
	ToolTimeline      Tool = "timeline"
)

// KnownTools lists every calculator the report engine can prepare data for.
var KnownTools = []Tool{
	ToolAffordability,
	ToolInvestor,
	ToolCommission,
	ToolNetSheet,
	ToolTimeline,
}

// ParseTool resolves a tool name, accepting the aliases the calculator
// front-ends send.
func ParseTool(name string) (Tool, error) {
	switch name {
	case "affordability", "afford":
		return ToolAffordability, nil
	case "investor", "deal", "investment":
		return ToolInvestor, nil
	case "commission", "commission-split", "split":
		return ToolCommission, nil
	case "netsheet", "net-sheet", "seller-net":
		return ToolNetSheet, nil
	case "timeline", "closing-date", "closing":
		return ToolTimeline, nil
	}
	return "", fmt.Errorf("unknown calculator tool: %s", name)
}

// CalculationRequest is one report request as decoded from a request file or
// the enclosing API layer: raw calculator fields plus property details.
// Values inside Calculation may be numbers, comma-grouped strings, percent
// strings, or absent; nothing is validated at this layer.
type CalculationRequest struct {
	Tool        string         `yaml:"tool" json:"tool"`
	Calculation map[string]any `yaml:"calculation" json:"calculation"`
	Property    map[string]any `yaml:"property" json:"property"`
	User        *User          `yaml:"user,omitempty" json:"user,omitempty"`
}

// User is the authenticated requester, when there is one. Reports for
// anonymous users carry FREE-tier branding.
type User struct {
	ID    string `yaml:"id" json:"id"`
	Email string `yaml:"email" json:"email"`
	Plan  string `yaml:"plan" json:"plan"`
}

// MilestoneStatus values are supplied by the caller, never recomputed here.
type MilestoneStatus string

const (
	MilestoneCompleted MilestoneStatus = "completed"
	MilestoneUpcoming  MilestoneStatus = "upcoming"
	MilestonePastDue   MilestoneStatus = "past-due"
	// MilestoneOverdue is a legacy spelling of past-due still sent by older
	// front-ends.
	MilestoneOverdue MilestoneStatus = "overdue"
)

// Stale reports whether a milestone should be excluded from printable
// timeline tables.
func (s MilestoneStatus) Stale() bool {
	return s == MilestonePastDue || s == MilestoneOverdue
}

// Milestone is a single closing-timeline entry.
type Milestone struct {
	Name        string          `yaml:"name" json:"name"`
	Date        time.Time       `yaml:"date" json:"date"`
	Status      MilestoneStatus `yaml:"status" json:"status"`
	Description string          `yaml:"description" json:"description"`
}
