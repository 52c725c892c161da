package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Emilinya/bounce/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the harness with a demo picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a demo, Tab to
view session statistics. Leaving a demo returns to the menu.

Examples:
  bounce menu
  bounce menu --fps 30 --preset slow
  bounce menu --db ./bounce.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	closeLog, err := logToFile()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts, err := demoOptions(store)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit || (menuResult.DemoID == "" && !menuResult.WantsStats) {
			return nil
		}

		if menuResult.WantsStats {
			goBack, sbErr := tui.RunStatsBoard(store, cfg)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		demo, err := createDemo(menuResult.DemoID, opts)
		if err != nil {
			return fmt.Errorf("creating demo %q: %w", menuResult.DemoID, err)
		}

		if err := tui.Run(demo, store, cfg); err != nil {
			log.Error("demo failed", "demo", menuResult.DemoID, "err", err)
		}
	}
}
