package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wayfind/internal/config"
	"wayfind/internal/paths"
	"wayfind/internal/store"
	"wayfind/internal/tui"
	"wayfind/internal/ui"
)

var rootPrintPath bool

var rootCmd = &cobra.Command{
	Use:   "wayfind",
	Short: "Fuzzy directory jumper",
	Long: `wayfind ranks your registered directories with an end-weighted fuzzy
score and gets you there fast. Matches near the end of short paths win.`,
	RunE:          runPick,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&rootPrintPath, "print-path", false, "Print selected path only (for shell helpers)")
	rootCmd.Flags().MarkHidden("print-path")
}

// openStores loads config and opens the registry in one go; the caller owns
// closing the returned DB.
func openStores() (*store.DB, *paths.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}
	applyCaseOverride(cfg)

	db, err := store.Open(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return db, paths.NewStore(db.Conn(), cfg.Search), cfg, nil
}

// runPick shows the interactive picker when you just type `wayfind`.
func runPick(_ *cobra.Command, _ []string) error {
	db, ps, cfg, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := ps.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  No paths registered yet."))
		fmt.Printf("  Add one: %s\n", ui.Accent.Render("wayfind add ."))
		fmt.Printf("  Or discover: %s\n", ui.Accent.Render("wayfind scan ~/Projects"))
		fmt.Println()
		return nil
	}

	if !tui.IsTTY() {
		if rootPrintPath {
			return fmt.Errorf("--print-path requires a terminal")
		}
		return printEntryList(entries)
	}

	items := make([]tui.Item, len(entries))
	for i := range entries {
		items[i] = entries[i]
	}
	chosen, err := tui.Run(items,
		tui.WithTitle(ui.IconCompass+"Where to?"),
		tui.WithHeight(12),
		tui.WithCaseSensitive(cfg.Search.CaseSensitive),
	)
	if err != nil {
		return err
	}
	if chosen == nil {
		return nil
	}

	path := chosen.FilterValue()
	if rootPrintPath {
		fmt.Print(path)
		return nil
	}

	ui.Ok(fmt.Sprintf("Selected %s", ui.Accent.Render(path)))
	fmt.Printf("  Switch now: %s\n", ui.Muted.Render("cd "+path))
	fmt.Println()
	return nil
}

func printEntryList(entries []paths.Entry) error {
	width := ui.TermWidth()
	for _, e := range entries {
		fmt.Println(ui.TruncatePath(e.Path, width))
	}
	return nil
}
