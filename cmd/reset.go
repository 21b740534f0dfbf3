package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillbridge-ai/skillbridge/internal/progress"
	"github.com/skillbridge-ai/skillbridge/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This clears the active track and all completed topics. Continue? [y/N] ")
			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		adapter := progress.NewAdapter(s.KV(), newLogger(os.Stderr))
		if err := adapter.Reset(); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Println("Progress cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
