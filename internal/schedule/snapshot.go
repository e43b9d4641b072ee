package schedule

// Snapshot is the serializable form of a Week, persisted as a single
// schedule document per tutor.
type Snapshot struct {
	Days  []string              `json:"days"`
	Slots map[string][]TimeSlot `json:"slots"`
}

// Snapshot captures the week for persistence.
func (w *Week) Snapshot() Snapshot {
	snap := Snapshot{
		Days:  w.Days(),
		Slots: make(map[string][]TimeSlot, len(w.days)),
	}
	for _, d := range w.days {
		slots := make([]TimeSlot, len(w.slots[d]))
		copy(slots, w.slots[d])
		snap.Slots[d] = slots
	}
	return snap
}

// FromSnapshot rebuilds a Week from a persisted snapshot. Days listed
// without slots come back empty; slot order is re-derived from start
// times.
func FromSnapshot(snap Snapshot) *Week {
	w := NewWeek()
	for _, d := range snap.Days {
		w.days = append(w.days, d)
		slots := make([]TimeSlot, len(snap.Slots[d]))
		copy(slots, snap.Slots[d])
		w.slots[d] = slots
		w.sortDay(d)
	}
	return w
}
