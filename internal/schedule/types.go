// Package schedule holds and mutates a tutor's weekly timetable:
// named days, each an ordered list of time slots, some of which carry
// full session detail.
package schedule

import (
	"strings"

	"github.com/givenmalebe/phonics-sub000/internal/progress"
)

// SlotKind distinguishes plain placeholder slots from detailed sessions.
type SlotKind string

const (
	SlotFree     SlotKind = "free"
	SlotBreak    SlotKind = "break"
	SlotAdmin    SlotKind = "admin"
	SlotDetailed SlotKind = "detailed"
)

// RefStatus labels a session-roster entry for display.
type RefStatus string

const (
	RefNeedsSupport RefStatus = "Needs Support"
	RefOnTrack      RefStatus = "On Track"
	RefExcellent    RefStatus = "Excellent"
)

// StatusForProgress derives a roster-entry status from its progress value.
func StatusForProgress(p int) RefStatus {
	switch {
	case p >= 80:
		return RefExcellent
	case p >= 50:
		return RefOnTrack
	default:
		return RefNeedsSupport
	}
}

// StudentRef is a lightweight session-scoped view of a student,
// attached to a detailed slot's roster and joined to the full Student
// record by name.
type StudentRef struct {
	Name     string    `json:"name"`
	Progress int       `json:"progress"`
	Status   RefStatus `json:"status"`
}

// LessonPlan describes what a detailed session will cover. List order
// is display order only.
type LessonPlan struct {
	Title      string   `json:"title"`
	Objectives []string `json:"objectives"`
	Materials  []string `json:"materials"`
	Activities []string `json:"activities"`
}

// TimeSlot is a single period in a day's schedule. Free, break and
// admin slots carry only a label; detailed slots carry full session
// data and a unique SessionID.
type TimeSlot struct {
	// Time is the period's range label, e.g. "08:00 - 08:30".
	Time string   `json:"time"`
	Kind SlotKind `json:"kind"`

	// Label is the display text for non-detailed slots.
	Label string `json:"label,omitempty"`

	// Detailed-session fields. SessionID is stable and unique across
	// the whole schedule; a slot without one cannot be opened for
	// session start.
	SessionID string         `json:"session_id,omitempty"`
	Grade     string         `json:"grade,omitempty"`
	Group     string         `json:"group,omitempty"`
	Level     progress.Level `json:"level,omitempty"`
	Location  string         `json:"location,omitempty"`
	Roster    []StudentRef   `json:"roster,omitempty"`
	Lesson    LessonPlan     `json:"lesson,omitempty"`
}

// StartTime returns the leading "HH:MM" of the slot's time range.
// Lexicographic order on this value is the day's slot order.
func (s TimeSlot) StartTime() string {
	start, _, ok := strings.Cut(s.Time, "-")
	if !ok {
		return strings.TrimSpace(s.Time)
	}
	return strings.TrimSpace(start)
}

// EndTime returns the trailing "HH:MM" of the slot's time range, or
// an empty string if the range has no end.
func (s TimeSlot) EndTime() string {
	_, end, ok := strings.Cut(s.Time, "-")
	if !ok {
		return ""
	}
	return strings.TrimSpace(end)
}

// DisplayLabel returns the text shown in a timetable cell.
func (s TimeSlot) DisplayLabel() string {
	if s.Kind == SlotDetailed {
		return s.Group
	}
	return s.Label
}
