package schedule

import (
	"fmt"
	"sort"

	"github.com/givenmalebe/phonics-sub000/internal/validate"
)

// Week is a tutor's timetable: named days in insertion order, each
// holding an ordered list of time slots. A Week exclusively owns its
// slots; callers mutate them only through Week operations.
type Week struct {
	days  []string
	slots map[string][]TimeSlot
}

// NewWeek returns an empty schedule.
func NewWeek() *Week {
	return &Week{slots: make(map[string][]TimeSlot)}
}

// Days returns the day names in display order.
func (w *Week) Days() []string {
	out := make([]string, len(w.days))
	copy(out, w.days)
	return out
}

// HasDay reports whether the named day exists.
func (w *Week) HasDay(name string) bool {
	_, ok := w.slots[name]
	return ok
}

// Slots returns the slots of the named day in time order.
func (w *Week) Slots(day string) ([]TimeSlot, error) {
	slots, ok := w.slots[day]
	if !ok {
		return nil, validate.New(fmt.Sprintf("unknown day %q", day))
	}
	out := make([]TimeSlot, len(slots))
	copy(out, slots)
	return out, nil
}

// Slot returns a pointer to the slot at index in the named day.
// The pointer stays valid until the day's slot list is next mutated.
func (w *Week) Slot(day string, index int) (*TimeSlot, error) {
	slots, ok := w.slots[day]
	if !ok {
		return nil, validate.New(fmt.Sprintf("unknown day %q", day))
	}
	if index < 0 || index >= len(slots) {
		return nil, validate.New(fmt.Sprintf("slot index %d out of range for %s", index, day))
	}
	return &slots[index], nil
}

// AddDay adds a named day seeded with the default day template.
// Fails with DuplicateDayError if the name is taken.
func (w *Week) AddDay(name string) error {
	return w.AddDayWithTemplate(name, DefaultDayTemplate())
}

// AddDayWithTemplate adds a named day seeded from the given slots.
func (w *Week) AddDayWithTemplate(name string, tpl []TimeSlot) error {
	if name == "" {
		return validate.New("day name is required")
	}
	if w.HasDay(name) {
		return &DuplicateDayError{Day: name}
	}
	seeded := make([]TimeSlot, len(tpl))
	copy(seeded, tpl)
	w.days = append(w.days, name)
	w.slots[name] = seeded
	w.sortDay(name)
	return nil
}

// DeleteDay removes a day and returns the remaining day names so the
// caller can re-select a default if the deleted day was selected.
// Fails with LastDayError when only one day remains.
func (w *Week) DeleteDay(name string) ([]string, error) {
	if !w.HasDay(name) {
		return nil, validate.New(fmt.Sprintf("unknown day %q", name))
	}
	if len(w.days) == 1 {
		return nil, &LastDayError{Day: name}
	}
	delete(w.slots, name)
	for i, d := range w.days {
		if d == name {
			w.days = append(w.days[:i], w.days[i+1:]...)
			break
		}
	}
	return w.Days(), nil
}

// AddSlot inserts a slot into the named day and re-sorts the day by
// slot start time. Detailed slots must carry a schedule-wide unique
// SessionID.
func (w *Week) AddSlot(day string, slot TimeSlot) error {
	if _, ok := w.slots[day]; !ok {
		return validate.New(fmt.Sprintf("unknown day %q", day))
	}
	if slot.Time == "" {
		return validate.New("slot time is required", validate.FieldError{Field: "time", Error: "empty"})
	}
	if slot.Kind == "" {
		slot.Kind = SlotFree
	}
	if slot.Kind == SlotDetailed {
		if slot.SessionID == "" {
			return validate.New("detailed slot requires a session id", validate.FieldError{Field: "session_id", Error: "empty"})
		}
		if slot.Group == "" {
			return validate.New("detailed slot requires a class name", validate.FieldError{Field: "group", Error: "empty"})
		}
		if day, idx, ok := w.FindSession(slot.SessionID); ok {
			return validate.New(fmt.Sprintf("session id %q already used by %s slot %d", slot.SessionID, day, idx))
		}
	} else if slot.Label == "" {
		return validate.New("slot label is required", validate.FieldError{Field: "label", Error: "empty"})
	}
	w.slots[day] = append(w.slots[day], slot)
	w.sortDay(day)
	return nil
}

// DeleteSlot removes the slot at index from the named day. Destructive;
// callers are expected to confirm with the user first.
func (w *Week) DeleteSlot(day string, index int) error {
	slots, ok := w.slots[day]
	if !ok {
		return validate.New(fmt.Sprintf("unknown day %q", day))
	}
	if index < 0 || index >= len(slots) {
		return validate.New(fmt.Sprintf("slot index %d out of range for %s", index, day))
	}
	w.slots[day] = append(slots[:index], slots[index+1:]...)
	return nil
}

// UpdateSlotLabel sets the display label of a non-detailed slot.
func (w *Week) UpdateSlotLabel(day string, index int, label string) error {
	slot, err := w.Slot(day, index)
	if err != nil {
		return err
	}
	if slot.Kind == SlotDetailed {
		return validate.New("cannot relabel a detailed session slot")
	}
	if label == "" {
		return validate.New("slot label is required", validate.FieldError{Field: "label", Error: "empty"})
	}
	slot.Label = label
	return nil
}

// ClearDetailedSlot converts a detailed slot back to a free slot,
// preserving only its time. Used when a session is deleted.
func (w *Week) ClearDetailedSlot(day string, index int) error {
	slot, err := w.Slot(day, index)
	if err != nil {
		return err
	}
	if slot.Kind != SlotDetailed {
		return validate.New("slot is not a detailed session")
	}
	*slot = TimeSlot{Time: slot.Time, Kind: SlotFree, Label: "Free"}
	return nil
}

// FindSession locates a detailed slot by session id.
func (w *Week) FindSession(sessionID string) (day string, index int, ok bool) {
	for _, d := range w.days {
		for i, s := range w.slots[d] {
			if s.Kind == SlotDetailed && s.SessionID == sessionID {
				return d, i, true
			}
		}
	}
	return "", 0, false
}

// SessionIDs returns the session ids of every detailed slot.
func (w *Week) SessionIDs() []string {
	var ids []string
	for _, d := range w.days {
		for _, s := range w.slots[d] {
			if s.Kind == SlotDetailed && s.SessionID != "" {
				ids = append(ids, s.SessionID)
			}
		}
	}
	return ids
}

func (w *Week) sortDay(day string) {
	slots := w.slots[day]
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime() < slots[j].StartTime()
	})
}
