package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Emilinya/bounce/internal/collision"
	"github.com/Emilinya/bounce/internal/registry"
	"github.com/Emilinya/bounce/internal/storage"
)

var (
	flagLimit          int
	flagRecentAnomaly  int
	flagClearSessions  bool
	flagClearAnomalies bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [demo]",
	Short: "Show session statistics and anomaly counts",
	Long: `Display statistics from the session database.

Without a demo, prints a summary line per demo. With a demo, prints its
summary and its best sessions. Anomaly counts are always shown.

Examples:
  bounce stats
  bounce stats bouncer --limit 20
  bounce stats --anomalies 5
  bounce stats playground --clear-sessions`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show for a demo")
	statsCmd.Flags().IntVar(&flagRecentAnomaly, "anomalies", 0, "Also list the N most recent anomaly reports")
	statsCmd.Flags().BoolVar(&flagClearSessions, "clear-sessions", false, "Delete the stored sessions of the given demo")
	statsCmd.Flags().BoolVar(&flagClearAnomalies, "clear-anomalies", false, "Delete all stored anomaly reports")
}

func runStats(cmd *cobra.Command, args []string) error {
	var demoID string
	if len(args) == 1 {
		demoID = args[0]
		if !registry.Exists(demoID) {
			return fmt.Errorf("unknown demo %q (run 'bounce list' to see available demos)", demoID)
		}
	}
	if flagClearSessions && demoID == "" {
		return fmt.Errorf("--clear-sessions needs a demo")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearSessions {
		if err := store.ClearSessions(demoID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared sessions for %s.\n", demoID)
	}
	if flagClearAnomalies {
		if err := store.ClearAnomalies(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Cleared anomaly reports.")
	}

	if demoID == "" {
		err = printAllStats(out, store)
	} else {
		err = printDemoStats(out, store, demoID)
	}
	if err != nil {
		return err
	}

	return printAnomalies(out, store)
}

func printAllStats(out io.Writer, store *storage.Store) error {
	all, err := store.GetAllDemoStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Sessions")
	fmt.Fprintln(out, "========")
	if len(all) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "%-12s  %8s  %8s  %10s  %9s  %s\n", "Demo", "Sessions", "Best", "Bounces", "Anomalies", "Last")
	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(out, "%-12s  %8d  %8d  %10d  %9d  %s\n",
			id, s.Sessions, s.MaxBounces, s.TotalBounces, s.TotalAnomalies, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printDemoStats(out io.Writer, store *storage.Store, demoID string) error {
	stats, err := store.GetDemoStats(demoID)
	if err != nil {
		return err
	}
	sessions, err := store.TopSessions(demoID, flagLimit)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Sessions - %s", demoID)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, strings.Repeat("=", len(title)))

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%d sessions, best %d, average %.1f bounces, %d anomalies\n\n",
		stats.Sessions, stats.MaxBounces, stats.AvgBounces, stats.TotalAnomalies)

	fmt.Fprintf(out, "%-6s  %8s  %9s  %8s  %s\n", "Rank", "Bounces", "Anomalies", "Time", "Date")
	for i, s := range sessions {
		fmt.Fprintf(out, "%-6s  %8d  %9d  %8s  %s\n",
			fmt.Sprintf("#%d", i+1), s.Bounces, s.Anomalies, ticksToDuration(s.Ticks), s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printAnomalies(out io.Writer, store *storage.Store) error {
	counts, err := store.AnomalyCounts()
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Anomalies")
	fmt.Fprintln(out, "=========")
	if len(counts) == 0 {
		fmt.Fprintln(out, "None recorded.")
	}
	for _, c := range counts {
		fmt.Fprintf(out, "%-9s  %-17s  %d\n", c.Op, c.Kind, c.Count)
	}

	if flagRecentAnomaly <= 0 {
		return nil
	}
	recent, err := store.RecentAnomalies(flagRecentAnomaly)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	for _, e := range recent {
		fmt.Fprintf(out, "%s  %s %s  self=%s other=%s", e.At.Format(time.DateTime), e.Op, e.Kind, e.Self, e.Other)
		if e.Op == collision.OpRect {
			fmt.Fprintf(out, " dir=%s", e.Direction)
		}
		fmt.Fprintln(out)
	}
	return nil
}

// ticksToDuration converts simulation ticks at the --fps rate to wall time.
func ticksToDuration(ticks int) time.Duration {
	fps := max(flagFPS, 1)
	return (time.Duration(ticks) * time.Second / time.Duration(fps)).Round(time.Second)
}
