package onboarding

import (
	"fmt"
	"strconv"
	"time"

	"github.com/givenmalebe/phonics-sub000/internal/progress"
	"github.com/givenmalebe/phonics-sub000/internal/schedule"
	"github.com/givenmalebe/phonics-sub000/internal/validate"
)

// Wizard is one ephemeral session-onboarding flow. It borrows a read
// view of the originating slot's roster and lesson plan; nothing is
// persisted until finalize. Abandoning the wizard loses all capture.
type Wizard struct {
	step        Step
	showSummary bool
	sessionType SessionType
	ctx         SessionContext
	selected    []schedule.StudentRef
	assessment  *Assessment
	bonus       BonusFunc

	now func() time.Time
}

// NewWizard returns a closed wizard. A nil bonus falls back to
// RatingBonus.
func NewWizard(bonus BonusFunc) *Wizard {
	if bonus == nil {
		bonus = RatingBonus
	}
	return &Wizard{bonus: bonus, now: time.Now}
}

// Step returns the wizard's current step.
func (w *Wizard) Step() Step { return w.step }

// ShowingSummary reports whether the step-3 summary view is active.
func (w *Wizard) ShowingSummary() bool { return w.showSummary }

// SessionType returns the chosen session type.
func (w *Wizard) SessionType() SessionType { return w.sessionType }

// Context returns the session context the wizard operates on.
func (w *Wizard) Context() SessionContext { return w.ctx }

// Selected returns a copy of the currently selected students.
func (w *Wizard) Selected() []schedule.StudentRef {
	out := make([]schedule.StudentRef, len(w.selected))
	copy(out, w.selected)
	return out
}

// SelectedCount returns the running selection count for display.
func (w *Wizard) SelectedCount() int { return len(w.selected) }

// SelectedNames returns the selected students' names for display.
func (w *Wizard) SelectedNames() []string {
	names := make([]string, len(w.selected))
	for i, s := range w.selected {
		names[i] = s.Name
	}
	return names
}

// Assessment returns the captured assessment, or nil before submit.
func (w *Wizard) Assessment() *Assessment { return w.assessment }

// Open starts the flow on a timetable slot at step 1. The slot must be
// a detailed session carrying a session id.
func (w *Wizard) Open(slot schedule.TimeSlot) error {
	if w.step != StepClosed {
		return &stateError{op: "open", step: w.step}
	}
	if slot.Kind != schedule.SlotDetailed || slot.SessionID == "" {
		return validate.New("slot cannot be opened for session start")
	}
	roster := make([]schedule.StudentRef, len(slot.Roster))
	copy(roster, slot.Roster)
	w.ctx = SessionContext{
		Origin:    FromSchedule,
		SessionID: slot.SessionID,
		Grade:     slot.Grade,
		Group:     slot.Group,
		Level:     slot.Level,
		Location:  slot.Location,
		TimeRange: slot.Time,
		Roster:    roster,
		Lesson:    slot.Lesson,
	}
	w.step = StepType
	w.sessionType = TypeGroup
	w.selected = nil
	w.assessment = nil
	w.showSummary = false
	return nil
}

// OpenFromProfile starts the flow directly from a student's profile:
// the wizard lands on step 3 as an individual session over a context
// synthesized from the student's current level and lesson. Step 1 and 2
// behavior is identical to the schedule path from there on.
func (w *Wizard) OpenFromProfile(st progress.Student, sessionID string) error {
	if w.step != StepClosed {
		return &stateError{op: "open", step: w.step}
	}
	if sessionID == "" {
		return validate.New("session id is required")
	}
	ref := schedule.StudentRef{
		Name:     st.FullName(),
		Progress: st.Progress,
		Status:   schedule.StatusForProgress(st.Progress),
	}
	w.ctx = SessionContext{
		Origin:    FromStudentProfile,
		SessionID: sessionID,
		Group:     st.FullName(),
		Level:     st.Level,
		TimeRange: w.now().Format("15:04"),
		Roster:    []schedule.StudentRef{ref},
		Lesson:    schedule.LessonPlan{Title: st.CurrentLesson},
	}
	w.sessionType = TypeIndividual
	w.selected = []schedule.StudentRef{ref}
	w.assessment = nil
	w.showSummary = false
	w.step = StepAssessment
	return nil
}

// ChooseType records the session type at step 1. Switching to
// individual clears any prior multi-selection. For profile-origin flows
// the type is fixed to individual and re-choosing it is a no-op.
func (w *Wizard) ChooseType(t SessionType) error {
	if w.ctx.Origin == FromStudentProfile {
		if t == TypeIndividual {
			return nil
		}
		return validate.New("profile sessions are always individual")
	}
	if w.step != StepType {
		return &stateError{op: "choose type", step: w.step}
	}
	if t != TypeGroup && t != TypeIndividual {
		return validate.New(fmt.Sprintf("unknown session type %q", t))
	}
	if t == TypeIndividual && w.sessionType != TypeIndividual {
		w.selected = nil
	}
	w.sessionType = t
	return nil
}

// ToggleStudent adds or removes a participant at step 2. Group
// sessions use multi-select semantics; individual sessions keep at
// most one selection, replacing any prior choice.
func (w *Wizard) ToggleStudent(name string) error {
	if w.step != StepStudents {
		return &stateError{op: "toggle student", step: w.step}
	}
	ref, ok := w.rosterEntry(name)
	if !ok {
		return validate.New(fmt.Sprintf("%q is not on this session's roster", name))
	}
	if w.sessionType == TypeIndividual {
		if len(w.selected) == 1 && w.selected[0].Name == name {
			w.selected = nil
			return nil
		}
		w.selected = []schedule.StudentRef{ref}
		return nil
	}
	for i, s := range w.selected {
		if s.Name == name {
			w.selected = append(w.selected[:i], w.selected[i+1:]...)
			return nil
		}
	}
	w.selected = append(w.selected, ref)
	return nil
}

// Advance moves the wizard forward one step. Leaving step 2 requires a
// non-empty selection; on failure the step is unchanged.
func (w *Wizard) Advance() error {
	switch w.step {
	case StepType:
		w.step = StepStudents
		return nil
	case StepStudents:
		if len(w.selected) == 0 {
			return &EmptySelectionError{}
		}
		w.step = StepAssessment
		return nil
	default:
		return &stateError{op: "advance", step: w.step}
	}
}

// Back moves the wizard one step toward the start. From the summary it
// returns to assessment editing. Profile-origin flows have no steps
// before assessment.
func (w *Wizard) Back() error {
	if w.showSummary {
		w.showSummary = false
		return nil
	}
	switch w.step {
	case StepStudents:
		w.step = StepType
		return nil
	case StepAssessment:
		if w.ctx.Origin == FromStudentProfile {
			return validate.New("no prior step for a profile session")
		}
		w.step = StepStudents
		return nil
	default:
		return &stateError{op: "back", step: w.step}
	}
}

// SubmitAssessment captures the step-3 form, applies defaults,
// validates ranges, derives timing from the slot, and opens the
// summary view. Per-student notes are kept only for group sessions
// with more than one participant.
func (w *Wizard) SubmitAssessment(a Assessment) error {
	if w.step != StepAssessment || w.showSummary {
		return &stateError{op: "submit assessment", step: w.step}
	}
	if a.LessonTitle == "" {
		a.LessonTitle = w.ctx.Lesson.Title
	}
	if a.LevelTag == "" {
		a.LevelTag = string(w.ctx.Level)
	}
	if w.groupSize() > 1 {
		a.Notes = w.alignNotes(a.Notes)
	} else {
		a.Notes = nil
	}
	a.applyDefaults()
	if err := a.validateAssessment(); err != nil {
		return err
	}
	a.deriveTiming(w.ctx.TimeRange, w.now())
	w.assessment = &a
	w.showSummary = true
	return nil
}

// EditSummaryField applies an in-place correction to one student's
// note while the summary is showing. Field is one of "challenges",
// "rating", "notes".
func (w *Wizard) EditSummaryField(studentIndex int, field, value string) error {
	if !w.showSummary || w.assessment == nil {
		return &stateError{op: "edit summary", step: w.step}
	}
	notes := w.assessment.Notes
	if studentIndex < 0 || studentIndex >= len(notes) {
		return validate.New(fmt.Sprintf("student index %d out of range", studentIndex))
	}
	switch field {
	case "challenges":
		notes[studentIndex].Challenges = value
	case "notes":
		notes[studentIndex].Notes = value
	case "rating":
		r, err := strconv.Atoi(value)
		if err != nil || r < 1 || r > 10 {
			return validate.New("rating must be a number between 1 and 10",
				validate.FieldError{Field: "rating", Error: "out of range"})
		}
		notes[studentIndex].Rating = r
	default:
		return validate.New(fmt.Sprintf("unknown summary field %q", field))
	}
	return nil
}

// Finalize computes each selected student's new progress and hands the
// outcome to commit. On commit failure the wizard stays open at the
// summary and no state changes; on success the wizard closes. A nil
// commit closes without persistence (useful to callers that commit
// separately).
func (w *Wizard) Finalize(commit CommitFunc) (*Outcome, error) {
	if !w.showSummary || w.assessment == nil {
		return nil, &stateError{op: "finalize", step: w.step}
	}
	out := &Outcome{
		SessionID:  w.ctx.SessionID,
		Assessment: *w.assessment,
		Updates:    make([]ProgressUpdate, 0, len(w.selected)),
	}
	for _, s := range w.selected {
		note := w.noteFor(s.Name)
		bonus := w.bonus(note)
		next := s.Progress + bonus
		if next > 100 {
			next = 100
		}
		out.Updates = append(out.Updates, ProgressUpdate{
			Name:        s.Name,
			OldProgress: s.Progress,
			NewProgress: next,
			Rating:      note.Rating,
		})
	}
	if commit != nil {
		if err := commit(*out); err != nil {
			return nil, err
		}
	}
	w.reset()
	return out, nil
}

// Cancel discards all ephemeral state and closes the wizard.
func (w *Wizard) Cancel() {
	w.reset()
}

// Minimize behaves exactly like Cancel: there is no resumable state.
func (w *Wizard) Minimize() {
	w.reset()
}

func (w *Wizard) reset() {
	w.step = StepClosed
	w.showSummary = false
	w.sessionType = ""
	w.ctx = SessionContext{}
	w.selected = nil
	w.assessment = nil
}

func (w *Wizard) rosterEntry(name string) (schedule.StudentRef, bool) {
	for _, s := range w.ctx.Roster {
		if s.Name == name {
			return s, true
		}
	}
	return schedule.StudentRef{}, false
}

// groupSize is the participant count the assessment form is built for.
func (w *Wizard) groupSize() int {
	return len(w.selected)
}

// noteFor returns the captured note for a student, synthesizing one
// from the session-level rating for single-participant sessions.
func (w *Wizard) noteFor(name string) StudentNote {
	if w.assessment != nil {
		for _, n := range w.assessment.Notes {
			if n.StudentName == name {
				return n
			}
		}
	}
	rating := defaultSessionRating
	if w.assessment != nil {
		rating = w.assessment.Rating
	}
	return StudentNote{StudentName: name, Rating: rating}
}

// alignNotes matches submitted notes to the selected students by name,
// creating blank notes for anyone missing so defaults apply uniformly.
func (w *Wizard) alignNotes(notes []StudentNote) []StudentNote {
	byName := make(map[string]StudentNote, len(notes))
	for _, n := range notes {
		byName[n.StudentName] = n
	}
	aligned := make([]StudentNote, 0, len(w.selected))
	for _, s := range w.selected {
		n, ok := byName[s.Name]
		if !ok {
			n = StudentNote{StudentName: s.Name}
		}
		aligned = append(aligned, n)
	}
	return aligned
}
