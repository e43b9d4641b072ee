// Package progress derives comparable progress figures for students
// from their level and attendance, and classifies and orders rosters
// for display.
package progress

// absencePenalty is the progress deduction per missed session.
const absencePenalty = 5

// newStudentCutoff is the derived-progress threshold below which a
// PINK-level student is treated as brand new.
const newStudentCutoff = 20

// Status labels a student's derived standing for display.
type Status string

const (
	StatusNewStudent   Status = "New Student"
	StatusAdvanced     Status = "Advanced"
	StatusProgressing  Status = "Progressing"
	StatusNeedsSupport Status = "Needs Support"
)

// Compute derives a student's progress percentage from level and
// absence count. It is a pure function: the result is re-derivable at
// any time and is never itself persisted as ground truth.
func Compute(level Level, absenceCount int) int {
	p := level.Base() - absencePenalty*absenceCount
	if p < 0 {
		return 0
	}
	return p
}

// Classify maps a derived progress value to a display status.
// PINK-level students below the new-student cutoff are flagged as new
// so the caller can offer "Start Course" instead of "Continue".
func Classify(progress int, level Level) Status {
	if level == LevelPink && progress < newStudentCutoff {
		return StatusNewStudent
	}
	switch {
	case progress >= 90:
		return StatusAdvanced
	case progress >= 50:
		return StatusProgressing
	default:
		return StatusNeedsSupport
	}
}
