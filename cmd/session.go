package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/givenmalebe/phonics-sub000/internal/onboarding"
)

// sessionCmd runs a scripted session over a scheduled slot: group
// type, every rostered student selected, a default assessment. Useful
// for exercising the full lifecycle from the command line.
var sessionCmd = &cobra.Command{
	Use:   "session <day> <slot-index>",
	Short: "Run a session for a scheduled slot and record the results",
	Args:  cobra.ExactArgs(2),
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

		day := args[0]
		var index int
		if _, err := fmt.Sscanf(args[1], "%d", &index); err != nil {
			return fmt.Errorf("slot index must be a number: %w", err)
		}

		if err := eng.OpenSlot(day, index); err != nil {
			return err
		}
		wiz := eng.Wizard()
		if err := wiz.ChooseType(onboarding.TypeGroup); err != nil {
			return err
		}
		if err := wiz.Advance(); err != nil {
			return err
		}
		for _, ref := range wiz.Context().Roster {
			if err := wiz.ToggleStudent(ref.Name); err != nil {
				return err
			}
		}
		if err := wiz.Advance(); err != nil {
			return err
		}

		rating, _ := cmd.Flags().GetInt("rating")
		if err := wiz.SubmitAssessment(onboarding.Assessment{Rating: rating}); err != nil {
			return err
		}

		out, err := eng.Finalize(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Session %s recorded on %s\n", out.SessionID, out.Assessment.Date)
		for _, u := range out.Updates {
			fmt.Printf("  %-24s %3d%% -> %3d%%\n", u.Name, u.OldProgress, u.NewProgress)
		}
		return nil
	},
}

func init() {
	sessionCmd.Flags().Int("rating", 0, "Lesson rating 1-10 (defaults to 10)")
}
