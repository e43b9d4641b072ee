package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/givenmalebe/phonics-sub000/internal/engine"
	"github.com/givenmalebe/phonics-sub000/internal/schedule"
)

var _ engine.Store = (*Store)(nil)

// LoadSchedule returns a tutor's week, or nil if none is stored yet.
func (s *Store) LoadSchedule(ctx context.Context, tutorID string) (*schedule.Week, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM schedules WHERE tutor_id = ?`, tutorID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("load schedule", err)
	}
	var snap schedule.Snapshot
	if err := json.Unmarshal([]byte(doc), &snap); err != nil {
		return nil, wrap("decode schedule", err)
	}
	return schedule.FromSnapshot(snap), nil
}

// SaveSchedule persists a tutor's week as a single JSON document,
// replacing any previous version.
func (s *Store) SaveSchedule(ctx context.Context, tutorID string, snap schedule.Snapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return wrap("encode schedule", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO schedules (tutor_id, doc, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(tutor_id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		tutorID, string(doc))
	return wrap("save schedule", err)
}

// LoadRoster returns the roster of the detailed slot identified by
// sessionID, or nil if no such session exists.
func (s *Store) LoadRoster(ctx context.Context, tutorID, sessionID string) ([]schedule.StudentRef, error) {
	week, err := s.LoadSchedule(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if week == nil {
		return nil, nil
	}
	day, index, ok := week.FindSession(sessionID)
	if !ok {
		return nil, nil
	}
	slot, err := week.Slot(day, index)
	if err != nil {
		return nil, err
	}
	roster := make([]schedule.StudentRef, len(slot.Roster))
	copy(roster, slot.Roster)
	return roster, nil
}

// SaveSessionRecord appends a completed session's assessment to the
// session history.
func (s *Store) SaveSessionRecord(ctx context.Context, rec engine.SessionRecord) error {
	doc, err := json.Marshal(rec.Assessment)
	if err != nil {
		return wrap("encode session record", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_records (id, tutor_id, session_id, date, doc)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.TutorID, rec.SessionID, rec.Date, string(doc))
	return wrap("save session record", err)
}

// SessionRecordCount returns the number of stored session records for
// a tutor.
func (s *Store) SessionRecordCount(ctx context.Context, tutorID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM session_records WHERE tutor_id = ?`, tutorID).Scan(&n)
	if err != nil {
		return 0, wrap("count session records", err)
	}
	return n, nil
}
