package schedule

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDayTemplate(t *testing.T) {
	tpl := DefaultDayTemplate()
	if len(tpl) == 0 {
		t.Fatal("default template is empty")
	}
	for i, s := range tpl {
		if s.Time == "" || s.Label == "" {
			t.Errorf("slot %d missing time or label: %+v", i, s)
		}
		if s.Kind == SlotDetailed {
			t.Errorf("slot %d: template must not contain detailed slots", i)
		}
	}

	// Callers get an independent copy.
	tpl[0].Label = "mutated"
	if DefaultDayTemplate()[0].Label == "mutated" {
		t.Error("template copy shares backing array")
	}
}

func TestLoadDayTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.yaml")
	content := `slots:
  - time: "14:00 - 14:30"
    kind: free
    label: "Afternoon slot"
  - time: "14:30 - 15:00"
    kind: break
    label: "Snack"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	tpl, err := LoadDayTemplate(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tpl) != 2 {
		t.Fatalf("loaded %d slots, want 2", len(tpl))
	}
	if tpl[1].Kind != SlotBreak {
		t.Errorf("slot 1 kind = %q", tpl[1].Kind)
	}
}

func TestLoadDayTemplate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("slots:\n  - kind: free\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDayTemplate(path); err == nil {
		t.Error("expected error for slot without time")
	}

	if _, err := LoadDayTemplate(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDayTemplate_RejectsDetailedKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detailed.yaml")
	content := `slots:
  - time: "14:00 - 14:30"
    kind: detailed
    label: "nope"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDayTemplate(path); err == nil {
		t.Error("expected error for detailed kind in template")
	}
}
