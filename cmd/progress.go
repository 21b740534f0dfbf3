package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillbridge-ai/skillbridge/internal/catalog"
	"github.com/skillbridge-ai/skillbridge/internal/progress"
	"github.com/skillbridge-ai/skillbridge/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show learning progress for the active track",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		p := adapter.Load()

		track, ok := catalog.Find(p.SelectedSkillID)
		if !ok {
			fmt.Println("No active learning track. Pick one in the app sidebar.")
			return nil
		}

		completed := p.CompletedIn(track.TopicSet())
		fmt.Printf("%s — %d/%d topics completed\n", track.Name, completed, len(track.Topics))
		fmt.Println(strings.Repeat("─", 60))

		for _, topic := range track.Topics {
			mark := "○"
			if p.Completed(topic.ID) {
				mark = "✓"
			}
			fmt.Printf("  %s %s\n", mark, topic.Name)
		}
		return nil
	},
}
