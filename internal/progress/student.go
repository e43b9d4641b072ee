package progress

// Student is a roster-level learner record owned by a tutor.
type Student struct {
	// ID is the persistent identity assigned at creation.
	ID string

	Name    string
	Surname string

	// Level is the student's current Phono-Graphix stage.
	Level Level

	// CurrentLesson is the lesson the student is working through.
	CurrentLesson string

	// AbsenceCount is the number of missed sessions. Never negative.
	AbsenceCount int

	// Progress is the last committed progress value (0-100). Session
	// finalization is the only writer; for students with no recorded
	// sessions it starts at Compute(Level, AbsenceCount).
	Progress int
}

// FullName returns "Name Surname", the display and roster-join key.
func (s Student) FullName() string {
	if s.Surname == "" {
		return s.Name
	}
	return s.Name + " " + s.Surname
}
