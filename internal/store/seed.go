package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/givenmalebe/phonics-sub000/internal/progress"
	"github.com/givenmalebe/phonics-sub000/internal/schedule"
)

// SeedDemo loads a small demo roster and schedule for a tutor so the
// CLI has something to show on a fresh database. Idempotent per tutor:
// an existing schedule is left alone.
func (s *Store) SeedDemo(ctx context.Context, tutorID string) error {
	existing, err := s.LoadSchedule(ctx, tutorID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	students := []progress.Student{
		{Name: "Amahle", Surname: "Dlamini", Level: progress.LevelBlue, CurrentLesson: "Blending CVC words", AbsenceCount: 1},
		{Name: "Bongani", Surname: "Khumalo", Level: progress.LevelPink, CurrentLesson: "Sound pictures", AbsenceCount: 0},
		{Name: "Lerato", Surname: "Mokoena", Level: progress.LevelYellow, CurrentLesson: "Segmenting practice", AbsenceCount: 2},
		{Name: "Sipho", Surname: "Ndlovu", Level: progress.LevelPurple, CurrentLesson: "Sentence creation", AbsenceCount: 0},
	}
	for i := range students {
		students[i].ID = uuid.NewString()
		students[i].Progress = progress.Compute(students[i].Level, students[i].AbsenceCount)
		if err := s.CreateStudent(ctx, tutorID, students[i]); err != nil {
			return err
		}
	}

	week := schedule.NewWeek()
	for _, day := range []string{"Monday", "Tuesday", "Wednesday"} {
		if err := week.AddDay(day); err != nil {
			return err
		}
	}

	roster := make([]schedule.StudentRef, 0, 2)
	for _, st := range students[:2] {
		roster = append(roster, schedule.StudentRef{
			Name:     st.FullName(),
			Progress: st.Progress,
			Status:   schedule.StatusForProgress(st.Progress),
		})
	}
	session := schedule.TimeSlot{
		Time:      "09:00 - 09:30",
		Kind:      schedule.SlotDetailed,
		SessionID: uuid.NewString(),
		Grade:     "3A",
		Group:     "Grade 3A phonics",
		Level:     progress.LevelBlue,
		Location:  "Room 4",
		Roster:    roster,
		Lesson: schedule.LessonPlan{
			Title:      "Blending CVC words",
			Objectives: []string{"Blend three-sound words"},
			Materials:  []string{"Sound cards"},
			Activities: []string{"Card matching", "Paired reading"},
		},
	}
	// Replace the free 09:00 template slot with the demo session.
	if err := week.DeleteSlot("Monday", 2); err != nil {
		return err
	}
	if err := week.AddSlot("Monday", session); err != nil {
		return err
	}

	return s.SaveSchedule(ctx, tutorID, week.Snapshot())
}
