package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wayfind/internal/ui"
)

var (
	searchLimit  int
	searchScores bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank registered directories against a fuzzy query",
	Long: `Search lists every registered directory containing the query characters
in order, ranked best match first. Matches whose characters land near the
end of a short path outrank matches near the start of a long one.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var jumpCmd = &cobra.Command{
	Use:   "jump <query>",
	Short: "Print the best-matching directory (for shell integration)",
	Args:  cobra.ExactArgs(1),
	RunE:  runJump,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(jumpCmd)

	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum results (0 = config default)")
	searchCmd.Flags().BoolVar(&searchScores, "scores", false, "Show raw scores")
	searchCmd.Flags().Var(&caseOverride, "case", "Comparison mode: auto, sensitive, insensitive")
	jumpCmd.Flags().Var(&caseOverride, "case", "Comparison mode: auto, sensitive, insensitive")
}

func runSearch(_ *cobra.Command, args []string) error {
	db, ps, _, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := ps.Search(args[0])
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println(ui.Muted.Render("  No matches."))
		return nil
	}

	limit := len(matches)
	if searchLimit > 0 && searchLimit < limit {
		limit = searchLimit
	}

	width := ui.TermWidth()
	for _, m := range matches[:limit] {
		line := "  " + ui.TruncatePath(m.Path, width-10)
		if searchScores {
			line += ui.Muted.Render(fmt.Sprintf("  %d", m.Score))
		}
		fmt.Println(line)
	}
	return nil
}

func runJump(_ *cobra.Command, args []string) error {
	db, ps, _, err := openStores()
	if err != nil {
		return err
	}
	defer db.Close()

	best, err := ps.Best(args[0])
	if err != nil {
		return err
	}
	fmt.Println(best.Path)
	return nil
}
