package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"wayfind/internal/shell"
)

var initCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Print shell integration (the wf function)",
	Long: `Init prints the shell script defining the wf function. Add to your
shell config:

  eval "$(wayfind init bash)"     # or zsh, fish`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{shell.Bash, shell.Zsh, shell.Fish},
	RunE:      runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	script, err := shell.InitScript(args[0])
	if err != nil {
		return err
	}
	fmt.Print(script)
	return nil
}
