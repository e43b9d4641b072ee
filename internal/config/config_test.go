package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PHONICS_DB", "")
	t.Setenv("PHONICS_TUTOR", "")
	t.Setenv("PHONICS_DAY_TEMPLATE", "")

	cfg := Load()
	if cfg.TutorID != "demo-tutor" {
		t.Errorf("TutorID = %q, want demo-tutor", cfg.TutorID)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PHONICS_DB", "/tmp/p.db")
	t.Setenv("PHONICS_TUTOR", "tutor-7")
	t.Setenv("PHONICS_DAY_TEMPLATE", "/tmp/day.yaml")

	cfg := Load()
	if cfg.DBPath != "/tmp/p.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TutorID != "tutor-7" {
		t.Errorf("TutorID = %q", cfg.TutorID)
	}
	if cfg.DayTemplatePath != "/tmp/day.yaml" {
		t.Errorf("DayTemplatePath = %q", cfg.DayTemplatePath)
	}
}
