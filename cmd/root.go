package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/givenmalebe/phonics-sub000/internal/config"
	"github.com/givenmalebe/phonics-sub000/internal/engine"
	"github.com/givenmalebe/phonics-sub000/internal/schedule"
	"github.com/givenmalebe/phonics-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "phonics",
	Short: "Tutoring-center session and progress tool",
	Long:  "Phonics — manages a tutor's weekly schedule, student roster, and Phono-Graphix session records.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PHONICS_DB env var)")
	rootCmd.PersistentFlags().String("tutor", "", "Tutor id to operate on (overrides PHONICS_TUTOR env var)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PHONICS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func resolveTutorID(cmd *cobra.Command, cfg *config.Config) string {
	if t, _ := cmd.Flags().GetString("tutor"); t != "" {
		return t
	}
	return cfg.TutorID
}

// openStore loads config and opens the backing database.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg := config.Load()
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return st, cfg, nil
}

// buildEngine loads a tutor's schedule and roster into a SessionEngine.
func buildEngine(ctx context.Context, cmd *cobra.Command, st *store.Store, cfg *config.Config) (*engine.SessionEngine, error) {
	tutorID := resolveTutorID(cmd, cfg)
	week, err := st.LoadSchedule(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	if week == nil {
		week = schedule.NewWeek()
		if err := week.AddDay("Monday"); err != nil {
			return nil, err
		}
	}
	students, err := st.LoadStudents(ctx, tutorID)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	return engine.New(tutorID, week, students, st), nil
}
