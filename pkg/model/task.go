// Package model defines the task and calendar records the planner works on.
// Records are read-only snapshots for the duration of one run; nothing in
// here persists between invocations.
package model

import "strings"

// Status is a task's scheduling eligibility.
type Status string

const (
	// StatusActionable marks a task eligible for scheduling.
	StatusActionable Status = "actionable"
	// StatusPending marks a task that must never be scheduled; pending
	// tasks are only ever listed in a waiting section.
	StatusPending Status = "pending"
)

// ParseStatus maps a raw status string to a Status. Anything other than
// "pending" is treated as actionable, matching the task source contract.
func ParseStatus(s string) Status {
	if strings.ToLower(strings.TrimSpace(s)) == string(StatusPending) {
		return StatusPending
	}
	return StatusActionable
}

// Level is a closed high/medium/low scale shared by priority and effort.
// The zero value means unset.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
	LevelUnset  Level = ""
)

// ParseLevel maps a raw select value to a Level. Unknown values degrade to
// unset rather than erroring; missing priority or effort is never a fault.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelHigh:
		return LevelHigh
	case LevelMedium:
		return LevelMedium
	case LevelLow:
		return LevelLow
	}
	return LevelUnset
}

// Rank returns the sort rank for a level: high 0, medium 1, low 2, and 9
// for unset so unknowns sort last within their tier.
func (l Level) Rank() int {
	switch l {
	case LevelHigh:
		return 0
	case LevelMedium:
		return 1
	case LevelLow:
		return 2
	}
	return 9
}

// String renders the level for prompts and CLI output, with "unset" for
// the zero value.
func (l Level) String() string {
	if l == LevelUnset {
		return "unset"
	}
	return string(l)
}

// Deadline is a soft, inferred urgency signal: the nearest upcoming
// calendar event whose keywords overlap the task's project label. It is
// not an authoritative due date.
type Deadline struct {
	Days  int    // whole calendar days from today, never negative
	Event string // summary of the matched event
}

// Task is one tracked task from the task source. Project, when present,
// must be preserved verbatim in any rendering. Deadline is attached only
// by the deadline annotator; a nil Deadline means no known deadline, so
// the days/event pair can never be half-set.
type Task struct {
	Text     string
	Project  string
	Status   Status
	Priority Level
	Effort   Level
	Quick    bool
	Deadline *Deadline
}

// Tag returns the task's bracketed project tag, e.g. "[COSMOS-Web]", or
// "" when the task has no project.
func (t Task) Tag() string {
	if t.Project == "" {
		return ""
	}
	return "[" + t.Project + "]"
}

// TaskList is one snapshot of the backlog, split by scheduling
// eligibility at the source boundary. Pending tasks never cross into the
// actionable ordering.
type TaskList struct {
	Actionable []Task
	Pending    []Task
}
