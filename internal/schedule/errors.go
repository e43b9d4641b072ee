package schedule

import "fmt"

// DuplicateDayError reports an attempt to add a day that already exists.
type DuplicateDayError struct {
	Day string
}

func (e *DuplicateDayError) Error() string {
	return fmt.Sprintf("day %q already exists", e.Day)
}

// LastDayError reports an attempt to delete the only remaining day.
// A schedule must always keep at least one day.
type LastDayError struct {
	Day string
}

func (e *LastDayError) Error() string {
	return fmt.Sprintf("cannot delete %q: schedule must keep at least one day", e.Day)
}
