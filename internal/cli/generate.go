package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yantr-labs/yantr/internal/workflow"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:     "generate <type> <name>",
	Aliases: []string{"g"},
	Short:   "Generate a file from a built-in template",
	Long: `Generate framework-specific code into the project's source directory.

Available types: route

Examples:
  yantr generate route users
  yantr g route order-items`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := workflow.Generate(cmd.Context(), newEnv(cmd, false), workflow.GenerateOptions{
			Dir:  ".",
			Type: args[0],
			Name: args[1],
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nGenerated %s %q (%d file)\n", args[0], args[1], len(files))
		return nil
	},
}
