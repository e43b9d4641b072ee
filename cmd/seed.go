package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo students and a demo schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		tutorID := resolveTutorID(cmd, cfg)
		if err := st.SeedDemo(cmd.Context(), tutorID); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		fmt.Printf("Seeded demo data for tutor %s\n", tutorID)
		return nil
	},
}
