package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Emilinya/bounce/internal/platform/tui"
	"github.com/Emilinya/bounce/internal/registry"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo.

Controls:
  WASD/Arrows  - Move (playground)
  P/Space      - Pause
  R            - Restart
  B/Esc        - Back
  Ctrl+S       - Save screenshot to ~/.bounce/screenshots
  Q/Ctrl+C     - Quit

Preset options:
  slow    - Half speed, no ramp
  normal  - Config as written
  fast    - Faster boxes, ramp enabled

Logs are written to ~/.bounce/bounce.log while the demo runs.

Examples:
  bounce play playground
  bounce play bouncer --preset fast
  bounce play bouncer --seed 42
  bounce play bouncer --config ./my-bouncer.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
		cmd.Flags().StringVar(&flagPreset, "preset", "", "Speed preset: slow, normal, fast")
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	demoID := args[0]

	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q (run 'bounce list' to see available demos)", demoID)
	}

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
	demo, err := createDemo(demoID, opts)
	if err != nil {
		return err
	}

	log.Info("starting demo", "demo", demoID, "preset", opts.Preset, "seed", flagSeed)
	if err := tui.Run(demo, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	log.Info("demo finished", "demo", demoID, "anomalies", opts.Checker.Anomalies())

	return nil
}
