// Package onboarding drives the multi-step flow that turns a scheduled
// slot into a recorded, assessed session: type selection, participant
// selection, assessment capture, and a reviewable summary that commits
// computed progress back to the roster on finalize.
package onboarding

import (
	"github.com/givenmalebe/phonics-sub000/internal/progress"
	"github.com/givenmalebe/phonics-sub000/internal/schedule"
)

// Step is the wizard's position in the flow.
type Step int

const (
	StepClosed Step = iota
	StepType
	StepStudents
	StepAssessment
)

func (s Step) String() string {
	switch s {
	case StepType:
		return "type"
	case StepStudents:
		return "students"
	case StepAssessment:
		return "assessment"
	default:
		return "closed"
	}
}

// SessionType selects group or individual session semantics.
type SessionType string

const (
	TypeGroup      SessionType = "group"
	TypeIndividual SessionType = "individual"
)

// Origin tags how the wizard was entered.
type Origin int

const (
	// FromSchedule means the wizard was opened on a timetable slot.
	FromSchedule Origin = iota
	// FromStudentProfile means the wizard was opened directly from a
	// student's profile, bypassing steps 1 and 2.
	FromStudentProfile
)

// SessionContext is the single shape the state machine operates on
// regardless of entry path. For schedule-origin flows it mirrors the
// originating detailed slot; for profile-origin flows it is synthesized
// from the student's current level and lesson.
type SessionContext struct {
	Origin    Origin
	SessionID string
	Grade     string
	Group     string
	Level     progress.Level
	Location  string
	TimeRange string
	Roster    []schedule.StudentRef
	Lesson    schedule.LessonPlan
}

// ProgressUpdate records one student's progress change computed at
// finalize time.
type ProgressUpdate struct {
	Name        string
	OldProgress int
	NewProgress int
	Rating      int
}

// Outcome is the committed result of a finalized session.
type Outcome struct {
	SessionID  string
	Assessment Assessment
	Updates    []ProgressUpdate
}

// CommitFunc persists a finalized outcome. It must be atomic: either
// every update is applied or none is.
type CommitFunc func(Outcome) error

// BonusFunc derives the progress bonus awarded to one student from
// that student's captured note. Implementations must be deterministic.
type BonusFunc func(note StudentNote) int

// RatingBonus is the default bonus: 4 + rating, so a 1-10 rating maps
// onto a 5-14 point award.
func RatingBonus(note StudentNote) int {
	return 4 + note.Rating
}
