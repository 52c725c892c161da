// bounce is a terminal harness for a 2D axis-aligned collision resolver.
//
// Usage:
//
//	bounce list               - List available demos
//	bounce play <demo>        - Run a demo
//	bounce menu               - Start menu to pick demos interactively
//	bounce check boundary     - Check a box against its boundary once
//	bounce check rect         - Check a moving box against another box once
//	bounce stats [demo]       - Show session statistics and anomaly counts
//	bounce serve              - Start SSH server for remote sessions
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.bounce/bounce.db)
//	--log-level <level>   - Set log level (debug, info, warn, error)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/Emilinya/bounce/internal/demos/bouncer"
	_ "github.com/Emilinya/bounce/internal/demos/playground"
)

const (
	envDBPath   = "BOUNCE_DB"
	envLogLevel = "BOUNCE_LOG_LEVEL"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - a collision resolver in your terminal",
	Long: `Bounce runs interactive demos of a 2D axis-aligned collision
resolver and lets you query the resolver directly.

Available commands:
  list     - Show all available demos
  play     - Run a specific demo directly
  menu     - Interactive demo picker menu
  check    - Evaluate a single collision check
  stats    - View session statistics and anomaly counts
  serve    - Start SSH server for remote sessions

Examples:
  bounce list
  bounce play bouncer --preset fast
  bounce check rect --dir 1,0 --self 0.5,0.5,1,1 --other 1,1.4,1,1
  bounce serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bounce/bounce.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads .env and applies environment defaults for flags the user
// did not set, then configures the default logger.
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv(envDBPath); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)
	return nil
}
