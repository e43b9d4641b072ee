package progress

import "testing"

func testRoster() []Student {
	return []Student{
		{Name: "Dan", Level: LevelPurple, Progress: 90, AbsenceCount: 0},
		{Name: "Ann", Level: LevelPink, Progress: 25, AbsenceCount: 3},
		{Name: "Cat", Level: LevelBlue, Progress: 50, AbsenceCount: 1},
		{Name: "Ben", Level: LevelYellow, Progress: 75, AbsenceCount: 2},
	}
}

func levelsOf(students []Student) []Level {
	out := make([]Level, len(students))
	for i, s := range students {
		out[i] = s.Level
	}
	return out
}

func TestSortRoster_ByLevelAscending(t *testing.T) {
	got := levelsOf(SortRoster(testRoster(), SortByLevel, Ascending))
	want := []Level{LevelPink, LevelBlue, LevelYellow, LevelPurple}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("level order = %v, want %v", got, want)
		}
	}
}

func TestSortRoster_ByLevelDescending(t *testing.T) {
	got := levelsOf(SortRoster(testRoster(), SortByLevel, Descending))
	want := []Level{LevelPurple, LevelYellow, LevelBlue, LevelPink}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("level order = %v, want %v", got, want)
		}
	}
}

func TestSortRoster_ByName(t *testing.T) {
	got := SortRoster(testRoster(), SortByName, Ascending)
	want := []string{"Ann", "Ben", "Cat", "Dan"}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("name order wrong at %d: got %q, want %q", i, got[i].Name, want[i])
		}
	}
}

func TestSortRoster_ByProgressDescending(t *testing.T) {
	got := SortRoster(testRoster(), SortByProgress, Descending)
	for i := 1; i < len(got); i++ {
		if got[i].Progress > got[i-1].Progress {
			t.Fatalf("progress not descending: %d after %d", got[i].Progress, got[i-1].Progress)
		}
	}
}

func TestSortRoster_ByAbsences(t *testing.T) {
	got := SortRoster(testRoster(), SortByAbsences, Ascending)
	for i := 1; i < len(got); i++ {
		if got[i].AbsenceCount < got[i-1].AbsenceCount {
			t.Fatalf("absences not ascending")
		}
	}
}

func TestSortRoster_DoesNotMutateInput(t *testing.T) {
	in := testRoster()
	first := in[0].Name
	SortRoster(in, SortByName, Ascending)
	if in[0].Name != first {
		t.Error("input slice was reordered")
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(testRoster())
	if sum.Count != 4 {
		t.Errorf("Count = %d, want 4", sum.Count)
	}
	if sum.AverageProgress != 60 {
		t.Errorf("AverageProgress = %d, want 60", sum.AverageProgress)
	}
	if sum.ByStatus[StatusAdvanced] != 1 {
		t.Errorf("Advanced count = %d, want 1", sum.ByStatus[StatusAdvanced])
	}
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Count != 0 || sum.AverageProgress != 0 {
		t.Errorf("empty summary = %+v", sum)
	}
}
