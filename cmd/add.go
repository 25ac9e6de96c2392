package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wayfind/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Register a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdd,
}

var rmCmd = &cobra.Command{
	Use:     "rm <path>",
	Aliases: []string{"remove"},
	Short:   "Unregister a directory",
	Args:    cobra.ExactArgs(1),
	RunE:    runRm,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered directories",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(listCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	db, ps, _, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	e, err := ps.Add(path)
	if err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Registered %s", ui.Accent.Render(e.Path)))
	return nil
}

func runRm(_ *cobra.Command, args []string) error {
	db, ps, _, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ps.Remove(args[0]); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Removed %s", ui.Accent.Render(args[0])))
	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	db, ps, _, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := ps.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(ui.Muted.Render("  No paths registered yet."))
		return nil
	}

	width := ui.TermWidth()
	for _, e := range entries {
		line := ui.TruncatePath(e.Path, width-12)
		if e.VisitCount > 0 {
			line += ui.Muted.Render(fmt.Sprintf("  ×%d", e.VisitCount))
		}
		fmt.Println("  " + line)
	}
	return nil
}
