package progress

import (
	"sort"
	"strings"
)

// SortKey selects the field a roster is ordered by.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByLevel    SortKey = "level"
	SortByProgress SortKey = "progress"
	SortByAbsences SortKey = "absences"
)

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortRoster returns a sorted copy of students ordered by key and
// direction. The input slice is not modified. Name ordering is
// case-insensitive lexicographic on "first last"; level ordering uses
// the fixed PINK < BLUE < YELLOW < PURPLE rank.
func SortRoster(students []Student, key SortKey, dir Direction) []Student {
	out := make([]Student, len(students))
	copy(out, students)

	less := func(a, b Student) bool {
		switch key {
		case SortByLevel:
			return a.Level.Rank() < b.Level.Rank()
		case SortByProgress:
			return a.Progress < b.Progress
		case SortByAbsences:
			return a.AbsenceCount < b.AbsenceCount
		default:
			return strings.ToLower(a.FullName()) < strings.ToLower(b.FullName())
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Summary aggregates a roster for overview display.
type Summary struct {
	Count           int
	AverageProgress int
	ByStatus        map[Status]int
}

// Summarize computes roster-wide statistics over committed progress.
func Summarize(students []Student) Summary {
	s := Summary{ByStatus: make(map[Status]int)}
	if len(students) == 0 {
		return s
	}
	total := 0
	for _, st := range students {
		total += st.Progress
		s.ByStatus[Classify(st.Progress, st.Level)]++
	}
	s.Count = len(students)
	s.AverageProgress = total / len(students)
	return s
}
