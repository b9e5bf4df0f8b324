package cmd

import (
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session that reads expressions from the terminal,
evaluates them, and prints their values.  A form spanning several lines is
read until its delimiters balance.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
