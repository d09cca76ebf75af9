package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zor",
	Short: "AI pair-programming CLI",
	Long: `Zor turns natural-language requests into concrete file-system changes:
planning and creating new projects from a description, and refactoring
existing multi-file codebases.

Available commands:
  plan     - Synthesize and display a project plan
  new      - Plan, scaffold and generate a new project
  refactor - Apply a refactor to the current codebase
`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(refactorCmd)
	rootCmd.AddCommand(versionCmd)
}
