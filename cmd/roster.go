package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/givenmalebe/phonics-sub000/internal/progress"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List the tutor's students with progress and status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		eng, err := buildEngine(cmd.Context(), cmd, st, cfg)
		if err != nil {
			return err
		}

		key, _ := cmd.Flags().GetString("sort")
		desc, _ := cmd.Flags().GetBool("desc")
		dir := progress.Ascending
		if desc {
			dir = progress.Descending
		}

		students := eng.SortedRoster(progress.SortKey(key), dir)
		for _, s := range students {
			status := progress.Classify(s.Progress, s.Level)
			fmt.Printf("%-24s %-7s %3d%%  absences %d  %s\n",
				s.FullName(), s.Level, s.Progress, s.AbsenceCount, status)
		}

		sum := eng.RosterSummary()
		if sum.Count > 0 {
			fmt.Printf("\n%d students, average progress %d%%\n", sum.Count, sum.AverageProgress)
		}
		return nil
	},
}

func init() {
	rosterCmd.Flags().String("sort", string(progress.SortByName), "Sort key: name, level, progress, absences")
	rosterCmd.Flags().Bool("desc", false, "Sort descending")
}
