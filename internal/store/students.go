package store

import (
	"context"
	"database/sql"

	"github.com/givenmalebe/phonics-sub000/internal/engine"
	"github.com/givenmalebe/phonics-sub000/internal/progress"
)

// LoadStudents returns a tutor's full student roster. Students with no
// recorded session progress get the derived baseline from level and
// absences.
func (s *Store) LoadStudents(ctx context.Context, tutorID string) ([]progress.Student, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, surname, level, current_lesson, absence_count, progress
		FROM students
		WHERE tutor_id = ?
		ORDER BY name, surname`, tutorID)
	if err != nil {
		return nil, wrap("load students", err)
	}
	defer rows.Close()

	var students []progress.Student
	for rows.Next() {
		var st progress.Student
		var level string
		var prog sql.NullInt64
		if err := rows.Scan(&st.ID, &st.Name, &st.Surname, &level, &st.CurrentLesson, &st.AbsenceCount, &prog); err != nil {
			return nil, wrap("scan student", err)
		}
		st.Level = progress.Level(level)
		if prog.Valid {
			st.Progress = int(prog.Int64)
		} else {
			st.Progress = progress.Compute(st.Level, st.AbsenceCount)
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("load students", err)
	}
	return students, nil
}

// LoadStudent returns a single student by id, or nil if absent.
func (s *Store) LoadStudent(ctx context.Context, studentID string) (*progress.Student, error) {
	var st progress.Student
	var level string
	var prog sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, surname, level, current_lesson, absence_count, progress
		FROM students
		WHERE id = ?`, studentID).
		Scan(&st.ID, &st.Name, &st.Surname, &level, &st.CurrentLesson, &st.AbsenceCount, &prog)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("load student", err)
	}
	st.Level = progress.Level(level)
	if prog.Valid {
		st.Progress = int(prog.Int64)
	} else {
		st.Progress = progress.Compute(st.Level, st.AbsenceCount)
	}
	return &st, nil
}

// CreateStudent inserts a new student record.
func (s *Store) CreateStudent(ctx context.Context, tutorID string, st progress.Student) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO students (id, tutor_id, name, surname, level, current_lesson, absence_count, progress)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		st.ID, tutorID, st.Name, st.Surname, string(st.Level), st.CurrentLesson, st.AbsenceCount, st.Progress)
	return wrap("create student", err)
}

// SaveStudents applies a batch of post-session updates inside a single
// transaction: either every student's row changes or none does.
func (s *Store) SaveStudents(ctx context.Context, updates []engine.StudentUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return wrap("begin students batch", err)
	}
	for _, u := range updates {
		res, err := tx.ExecContext(ctx, `
			UPDATE students SET progress = ?, current_lesson = ? WHERE id = ?`,
			u.Progress, u.CurrentLesson, u.ID)
		if err != nil {
			tx.Rollback()
			return wrap("update student", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return wrap("update student", err)
		}
		if n == 0 {
			tx.Rollback()
			return wrap("update student", sql.ErrNoRows)
		}
	}
	if err := tx.Commit(); err != nil {
		return wrap("commit students batch", err)
	}
	return nil
}
