// Package engine ties the schedule, the student roster, and the
// onboarding wizard together behind a single owner object, and commits
// finalized sessions to the persistence collaborator.
package engine

import (
	"context"
	"fmt"

	"github.com/givenmalebe/phonics-sub000/internal/onboarding"
	"github.com/givenmalebe/phonics-sub000/internal/progress"
	"github.com/givenmalebe/phonics-sub000/internal/schedule"
	"github.com/givenmalebe/phonics-sub000/internal/validate"
)

// StudentUpdate is one student's persisted field change.
type StudentUpdate struct {
	ID            string
	Progress      int
	CurrentLesson string
}

// SessionRecord is a completed session appended to history.
type SessionRecord struct {
	ID         string
	TutorID    string
	SessionID  string
	Date       string
	Assessment onboarding.Assessment
}

// Store is the persistence collaborator the engine writes through.
// SaveStudents must apply its batch atomically.
type Store interface {
	SaveSchedule(ctx context.Context, tutorID string, snap schedule.Snapshot) error
	SaveStudents(ctx context.Context, updates []StudentUpdate) error
	SaveSessionRecord(ctx context.Context, rec SessionRecord) error
}

// SessionEngine owns one tutor's schedule, student roster, and the
// optional in-flight onboarding wizard. All operations are expected to
// run on a single caller thread; there is no internal locking.
type SessionEngine struct {
	tutorID  string
	week     *schedule.Week
	students []progress.Student
	wizard   *onboarding.Wizard
	store    Store
	newID    func() string
}

// New builds an engine over loaded state. Store may be nil for purely
// in-memory use (finalize then skips persistence).
func New(tutorID string, week *schedule.Week, students []progress.Student, st Store) *SessionEngine {
	return &SessionEngine{
		tutorID:  tutorID,
		week:     week,
		students: students,
		wizard:   onboarding.NewWizard(nil),
		store:    st,
		newID:    defaultID,
	}
}

// SetBonusFunc replaces the wizard's progress-bonus derivation.
func (e *SessionEngine) SetBonusFunc(fn onboarding.BonusFunc) {
	e.wizard = onboarding.NewWizard(fn)
}

// Week returns the tutor's schedule.
func (e *SessionEngine) Week() *schedule.Week { return e.week }

// Students returns the tutor's full student roster.
func (e *SessionEngine) Students() []progress.Student {
	out := make([]progress.Student, len(e.students))
	copy(out, e.students)
	return out
}

// Wizard exposes the onboarding flow for step-level operations.
func (e *SessionEngine) Wizard() *onboarding.Wizard { return e.wizard }

// SortedRoster returns the roster ordered by key and direction.
func (e *SessionEngine) SortedRoster(key progress.SortKey, dir progress.Direction) []progress.Student {
	return progress.SortRoster(e.students, key, dir)
}

// RosterSummary aggregates the roster for overview display.
func (e *SessionEngine) RosterSummary() progress.Summary {
	return progress.Summarize(e.students)
}

// OpenSlot starts the onboarding wizard on the slot at day/index.
func (e *SessionEngine) OpenSlot(day string, index int) error {
	slot, err := e.week.Slot(day, index)
	if err != nil {
		return err
	}
	return e.wizard.Open(*slot)
}

// OpenStudentProfile starts an individual session directly from a
// student's profile, bypassing type and participant selection.
func (e *SessionEngine) OpenStudentProfile(studentID string) error {
	for _, st := range e.students {
		if st.ID == studentID {
			return e.wizard.OpenFromProfile(st, e.newID())
		}
	}
	return validate.New(fmt.Sprintf("unknown student %q", studentID))
}

// Cancel discards the in-flight wizard.
func (e *SessionEngine) Cancel() {
	e.wizard.Cancel()
}

// Finalize commits the wizard's outcome: the student batch and session
// record are persisted first, and only on success are the in-memory
// roster and slot updated and the schedule document rewritten. A store
// failure leaves every student untouched and the wizard open at the
// summary.
func (e *SessionEngine) Finalize(ctx context.Context) (*onboarding.Outcome, error) {
	return e.wizard.Finalize(func(out onboarding.Outcome) error {
		if e.store == nil {
			e.applyOutcome(out)
			return nil
		}
		updates, err := e.studentUpdates(out)
		if err != nil {
			return err
		}
		if err := e.store.SaveStudents(ctx, updates); err != nil {
			return err
		}
		rec := SessionRecord{
			ID:         e.newID(),
			TutorID:    e.tutorID,
			SessionID:  out.SessionID,
			Date:       out.Assessment.Date,
			Assessment: out.Assessment,
		}
		if err := e.store.SaveSessionRecord(ctx, rec); err != nil {
			return err
		}
		e.applyOutcome(out)
		// The student batch is already durable; a schedule-document
		// failure is surfaced but the next save rewrites the full
		// document anyway.
		return e.store.SaveSchedule(ctx, e.tutorID, e.week.Snapshot())
	})
}

// studentUpdates maps outcome entries to persisted student records by
// full name.
func (e *SessionEngine) studentUpdates(out onboarding.Outcome) ([]StudentUpdate, error) {
	updates := make([]StudentUpdate, 0, len(out.Updates))
	for _, u := range out.Updates {
		st := e.findStudentByName(u.Name)
		if st == nil {
			return nil, validate.New(fmt.Sprintf("no student record for %q", u.Name))
		}
		updates = append(updates, StudentUpdate{
			ID:            st.ID,
			Progress:      u.NewProgress,
			CurrentLesson: out.Assessment.LessonTitle,
		})
	}
	return updates, nil
}

// applyOutcome writes the finalized progress back into the in-memory
// roster and, for schedule-origin sessions, the originating slot's
// roster entries (matched by name).
func (e *SessionEngine) applyOutcome(out onboarding.Outcome) {
	for _, u := range out.Updates {
		if st := e.findStudentByName(u.Name); st != nil {
			st.Progress = u.NewProgress
			st.CurrentLesson = out.Assessment.LessonTitle
		}
	}
	day, index, ok := e.week.FindSession(out.SessionID)
	if !ok {
		return
	}
	slot, err := e.week.Slot(day, index)
	if err != nil {
		return
	}
	for _, u := range out.Updates {
		for i := range slot.Roster {
			if slot.Roster[i].Name == u.Name {
				slot.Roster[i].Progress = u.NewProgress
				slot.Roster[i].Status = schedule.StatusForProgress(u.NewProgress)
			}
		}
	}
}

func (e *SessionEngine) findStudentByName(name string) *progress.Student {
	for i := range e.students {
		if e.students[i].FullName() == name {
			return &e.students[i]
		}
	}
	return nil
}
