package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/givenmalebe/phonics-sub000/internal/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the tutor's weekly timetable",
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

		week := eng.Week()
		for _, day := range week.Days() {
			fmt.Println(day)
			slots, err := week.Slots(day)
			if err != nil {
				return err
			}
			for i, slot := range slots {
				fmt.Printf("  %2d  %-15s %-9s %s\n", i, slot.Time, slot.Kind, describeSlot(slot))
			}
		}
		return nil
	},
}

func describeSlot(slot schedule.TimeSlot) string {
	if slot.Kind != schedule.SlotDetailed {
		return slot.Label
	}
	return fmt.Sprintf("%s [%s, %s, %d students]",
		slot.Group, slot.Level, slot.Location, len(slot.Roster))
}

var addDayCmd = &cobra.Command{
	Use:   "add-day <name>",
	Short: "Add a day seeded from the day template",
	Args:  cobra.ExactArgs(1),
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

		tpl := schedule.DefaultDayTemplate()
		if cfg.DayTemplatePath != "" {
			tpl, err = schedule.LoadDayTemplate(cfg.DayTemplatePath)
			if err != nil {
				return err
			}
		}
		if err := eng.Week().AddDayWithTemplate(args[0], tpl); err != nil {
			return err
		}
		return st.SaveSchedule(cmd.Context(), resolveTutorID(cmd, cfg), eng.Week().Snapshot())
	},
}

var deleteDayCmd = &cobra.Command{
	Use:   "delete-day <name>",
	Short: "Delete a day from the timetable",
	Args:  cobra.ExactArgs(1),
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

		remaining, err := eng.Week().DeleteDay(args[0])
		if err != nil {
			return err
		}
		fmt.Println("Remaining days:", remaining)
		return st.SaveSchedule(cmd.Context(), resolveTutorID(cmd, cfg), eng.Week().Snapshot())
	},
}

func init() {
	scheduleCmd.AddCommand(addDayCmd)
	scheduleCmd.AddCommand(deleteDayCmd)
}
