package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillbridge-ai/skillbridge/internal/app"
	"github.com/skillbridge-ai/skillbridge/internal/chat"
	"github.com/skillbridge-ai/skillbridge/internal/gateway"
	"github.com/skillbridge-ai/skillbridge/internal/llm"
	"github.com/skillbridge-ai/skillbridge/internal/progress"
	"github.com/skillbridge-ai/skillbridge/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	log, closer := openLogFile(dbPath)
	if closer != nil {
		defer closer.Close()
	}

	adapter := progress.NewAdapter(st.KV(), log)
	controller := chat.NewController(adapter)

	var gw *gateway.Gateway
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), log)
	if err != nil {
		log.Warn("tutor unavailable", "error", err)
		gw = gateway.NewUnavailable(err, log)
	} else {
		gw = gateway.New(provider, log)
	}

	return app.Run(app.Options{
		Controller: controller,
		Gateway:    gw,
	})
}
