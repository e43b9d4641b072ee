package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givenmalebe/phonics-sub000/internal/onboarding"
	"github.com/givenmalebe/phonics-sub000/internal/progress"
	"github.com/givenmalebe/phonics-sub000/internal/schedule"
)

// mockStore records writes and can be told to fail the student batch.
type mockStore struct {
	failStudents  bool
	students      map[string]int // id -> persisted progress
	schedules     int
	sessionSaves  int
	studentsCalls int
}

func newMockStore() *mockStore {
	return &mockStore{students: make(map[string]int)}
}

func (m *mockStore) SaveSchedule(ctx context.Context, tutorID string, snap schedule.Snapshot) error {
	m.schedules++
	return nil
}

func (m *mockStore) SaveStudents(ctx context.Context, updates []StudentUpdate) error {
	m.studentsCalls++
	if m.failStudents {
		return errors.New("store down")
	}
	// Atomic batch: apply all at once.
	for _, u := range updates {
		m.students[u.ID] = u.Progress
	}
	return nil
}

func (m *mockStore) SaveSessionRecord(ctx context.Context, rec SessionRecord) error {
	m.sessionSaves++
	return nil
}

func testStudents() []progress.Student {
	return []progress.Student{
		{ID: "stud-a", Name: "A", Level: progress.LevelBlue, Progress: 70},
		{ID: "stud-b", Name: "B", Level: progress.LevelPink, Progress: 40},
		{ID: "stud-c", Name: "C", Level: progress.LevelPurple, Progress: 90, CurrentLesson: "Sentence creation"},
	}
}

func testWeekWithSession(t *testing.T) *schedule.Week {
	t.Helper()
	w := schedule.NewWeek()
	require.NoError(t, w.AddDay("Monday"))
	slot := schedule.TimeSlot{
		Time:      "13:00 - 13:30",
		Kind:      schedule.SlotDetailed,
		SessionID: "sess-1",
		Grade:     "3A",
		Group:     "Grade 3A phonics",
		Level:     progress.LevelBlue,
		Roster: []schedule.StudentRef{
			{Name: "A", Progress: 70, Status: schedule.RefOnTrack},
			{Name: "B", Progress: 40, Status: schedule.RefNeedsSupport},
		},
		Lesson: schedule.LessonPlan{Title: "Blending CVC words"},
	}
	require.NoError(t, w.AddSlot("Monday", slot))
	return w
}

func sessionSlotIndex(t *testing.T, w *schedule.Week) int {
	t.Helper()
	_, idx, ok := w.FindSession("sess-1")
	require.True(t, ok)
	return idx
}

func TestEndToEndGroupSession(t *testing.T) {
	st := newMockStore()
	week := testWeekWithSession(t)
	eng := New("tutor-1", week, testStudents(), st)

	require.NoError(t, eng.OpenSlot("Monday", sessionSlotIndex(t, week)))
	wiz := eng.Wizard()
	require.NoError(t, wiz.ChooseType(onboarding.TypeGroup))
	require.NoError(t, wiz.Advance())
	require.NoError(t, wiz.ToggleStudent("A"))
	require.NoError(t, wiz.ToggleStudent("B"))
	require.NoError(t, wiz.Advance())
	require.NoError(t, wiz.SubmitAssessment(onboarding.Assessment{
		Notes: []onboarding.StudentNote{
			{StudentName: "A", Rating: 9},
			{StudentName: "B", Rating: 6},
		},
	}))

	out, err := eng.Finalize(context.Background())
	require.NoError(t, err)

	// Wizard closed, all writes happened.
	assert.Equal(t, onboarding.StepClosed, wiz.Step())
	assert.Equal(t, 1, st.studentsCalls)
	assert.Equal(t, 1, st.sessionSaves)
	assert.Equal(t, 1, st.schedules)

	// Both students improved, neither exceeded 100.
	require.Len(t, out.Updates, 2)
	for _, u := range out.Updates {
		assert.Greater(t, u.NewProgress, u.OldProgress, u.Name)
		assert.LessOrEqual(t, u.NewProgress, 100, u.Name)
	}

	// Persisted values match the outcome.
	assert.Equal(t, 83, st.students["stud-a"]) // 70 + 4 + 9
	assert.Equal(t, 50, st.students["stud-b"]) // 40 + 4 + 6

	// In-memory roster and slot updated, lesson carried over.
	for _, s := range eng.Students() {
		switch s.ID {
		case "stud-a":
			assert.Equal(t, 83, s.Progress)
			assert.Equal(t, "Blending CVC words", s.CurrentLesson)
		case "stud-b":
			assert.Equal(t, 50, s.Progress)
		}
	}
	slot, err := week.Slot("Monday", sessionSlotIndex(t, week))
	require.NoError(t, err)
	for _, ref := range slot.Roster {
		switch ref.Name {
		case "A":
			assert.Equal(t, 83, ref.Progress)
			assert.Equal(t, schedule.RefExcellent, ref.Status)
		case "B":
			assert.Equal(t, 50, ref.Progress)
			assert.Equal(t, schedule.RefOnTrack, ref.Status)
		}
	}
}

func TestFinalize_StoreFailureChangesNothing(t *testing.T) {
	st := newMockStore()
	st.failStudents = true
	week := testWeekWithSession(t)
	eng := New("tutor-1", week, testStudents(), st)

	require.NoError(t, eng.OpenSlot("Monday", sessionSlotIndex(t, week)))
	wiz := eng.Wizard()
	require.NoError(t, wiz.ChooseType(onboarding.TypeGroup))
	require.NoError(t, wiz.Advance())
	require.NoError(t, wiz.ToggleStudent("A"))
	require.NoError(t, wiz.ToggleStudent("B"))
	require.NoError(t, wiz.Advance())
	require.NoError(t, wiz.SubmitAssessment(onboarding.Assessment{}))

	_, err := eng.Finalize(context.Background())
	require.Error(t, err)

	// Nothing persisted, nothing mutated, wizard still at summary.
	assert.Empty(t, st.students)
	assert.Zero(t, st.sessionSaves)
	assert.Zero(t, st.schedules)
	assert.True(t, wiz.ShowingSummary())
	for _, s := range eng.Students() {
		if s.ID == "stud-a" {
			assert.Equal(t, 70, s.Progress)
		}
	}
	slot, err := week.Slot("Monday", sessionSlotIndex(t, week))
	require.NoError(t, err)
	assert.Equal(t, 70, slot.Roster[0].Progress)

	// Store recovers; retry succeeds from the summary.
	st.failStudents = false
	out, err := eng.Finalize(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.Updates, 2)
	assert.Equal(t, onboarding.StepClosed, wiz.Step())
}

func TestFinalize_UnknownRosterNameAborts(t *testing.T) {
	st := newMockStore()
	week := testWeekWithSession(t)
	// Roster references "B" but the student list has no such record.
	students := []progress.Student{{ID: "stud-a", Name: "A", Level: progress.LevelBlue, Progress: 70}}
	eng := New("tutor-1", week, students, st)

	require.NoError(t, eng.OpenSlot("Monday", sessionSlotIndex(t, week)))
	wiz := eng.Wizard()
	require.NoError(t, wiz.ChooseType(onboarding.TypeGroup))
	require.NoError(t, wiz.Advance())
	require.NoError(t, wiz.ToggleStudent("A"))
	require.NoError(t, wiz.ToggleStudent("B"))
	require.NoError(t, wiz.Advance())
	require.NoError(t, wiz.SubmitAssessment(onboarding.Assessment{}))

	_, err := eng.Finalize(context.Background())
	require.Error(t, err)
	assert.Empty(t, st.students)
	assert.True(t, wiz.ShowingSummary())
}

func TestOpenStudentProfile(t *testing.T) {
	st := newMockStore()
	week := testWeekWithSession(t)
	eng := New("tutor-1", week, testStudents(), st)

	require.NoError(t, eng.OpenStudentProfile("stud-c"))
	wiz := eng.Wizard()
	assert.Equal(t, onboarding.StepAssessment, wiz.Step())
	assert.Equal(t, onboarding.TypeIndividual, wiz.SessionType())

	require.NoError(t, wiz.SubmitAssessment(onboarding.Assessment{Rating: 3}))
	out, err := eng.Finalize(context.Background())
	require.NoError(t, err)

	// 90 + 4 + 3 = 97, no slot to update but students persist.
	require.Len(t, out.Updates, 1)
	assert.Equal(t, 97, st.students["stud-c"])

	require.Error(t, eng.OpenStudentProfile("nobody"))
}

func TestEngineWithoutStore(t *testing.T) {
	week := testWeekWithSession(t)
	eng := New("tutor-1", week, testStudents(), nil)

	require.NoError(t, eng.OpenSlot("Monday", sessionSlotIndex(t, week)))
	wiz := eng.Wizard()
	require.NoError(t, wiz.ChooseType(onboarding.TypeIndividual))
	require.NoError(t, wiz.Advance())
	require.NoError(t, wiz.ToggleStudent("A"))
	require.NoError(t, wiz.Advance())
	require.NoError(t, wiz.SubmitAssessment(onboarding.Assessment{Rating: 5}))

	out, err := eng.Finalize(context.Background())
	require.NoError(t, err)
	assert.Len(t, out.Updates, 1)
	assert.Equal(t, onboarding.StepClosed, wiz.Step())
}

func TestSortedRosterAndSummary(t *testing.T) {
	eng := New("tutor-1", schedule.NewWeek(), testStudents(), nil)
	sorted := eng.SortedRoster(progress.SortByProgress, progress.Descending)
	require.Len(t, sorted, 3)
	assert.Equal(t, "C", sorted[0].Name)
	assert.Equal(t, "B", sorted[2].Name)

	sum := eng.RosterSummary()
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 66, sum.AverageProgress) // (70+40+90)/3
}

func TestCancelDiscards(t *testing.T) {
	week := testWeekWithSession(t)
	eng := New("tutor-1", week, testStudents(), nil)
	require.NoError(t, eng.OpenSlot("Monday", sessionSlotIndex(t, week)))
	eng.Cancel()
	assert.Equal(t, onboarding.StepClosed, eng.Wizard().Step())
}
