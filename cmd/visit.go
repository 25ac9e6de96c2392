package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wayfind/internal/ui"
)

var visitCmd = &cobra.Command{
	Use:    "visit <path>",
	Short:  "Record a visit to a registered directory",
	Hidden: true, // called by the wf shell function, not by hand
	Args:   cobra.ExactArgs(1),
	RunE:   runVisit,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show registry statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(visitCmd)
	rootCmd.AddCommand(statsCmd)
}

func runVisit(_ *cobra.Command, args []string) error {
	db, ps, _, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	return ps.Visit(args[0])
}

func runStats(_ *cobra.Command, _ []string) error {
	db, ps, _, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := ps.GetStats()
	if err != nil {
		return err
	}

	ui.Header(ui.IconCompass + "wayfind stats")
	ui.Kv("Paths", fmt.Sprintf("%d", stats.PathCount))
	ui.Kv("Visits", fmt.Sprintf("%d", stats.VisitCount))
	if stats.MostVisited != "" {
		ui.Kv("Most visited", stats.MostVisited)
	}
	if stats.LastVisited != "" {
		ui.Kv("Last visited", stats.LastVisited)
	}
	fmt.Println()
	return nil
}
