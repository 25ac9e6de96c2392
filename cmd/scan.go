package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wayfind/internal/ui"
)

var scanDepth int

var scanCmd = &cobra.Command{
	Use:   "scan [root...]",
	Short: "Discover and register project directories",
	Long: `Scan walks the given roots (or scan.roots from config) looking for
directories holding a .git and registers each one found.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().IntVar(&scanDepth, "depth", 0, "Scan recursion depth (0 = config default)")
}

func runScan(_ *cobra.Command, args []string) error {
	db, ps, cfg, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	roots := args
	if len(roots) == 0 {
		roots = cfg.Scan.Roots
	}
	if len(roots) == 0 {
		return fmt.Errorf("no scan roots: pass one or set scan.roots in config")
	}

	scanCfg := cfg.Scan
	if scanDepth > 0 {
		scanCfg.Depth = scanDepth
	}

	total := 0
	for _, root := range roots {
		added, err := ps.Scan(root, scanCfg)
		if err != nil {
			return err
		}
		for _, e := range added {
			fmt.Println("  " + ui.Success.Render("+ ") + e.Path)
		}
		total += len(added)
	}

	if total == 0 {
		fmt.Println(ui.Muted.Render("  Nothing new found."))
		return nil
	}
	ui.Ok(fmt.Sprintf("Registered %d new directories", total))
	return nil
}
