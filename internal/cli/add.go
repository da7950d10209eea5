package cli

import (
	"github.com/spf13/cobra"
	"github.com/yantr-labs/yantr/internal/workflow"
)

var (
	addType        string
	addORM         string
	addOverwrite   bool
	addSkipInstall bool
)

func init() {
	addCmd.Flags().StringVar(&addType, "type", "", "Database type for the database component (postgres, mongodb)")
	addCmd.Flags().StringVar(&addORM, "orm", "", "ORM for the database component (default: first for the type)")
	addCmd.Flags().BoolVar(&addOverwrite, "overwrite", false, "Reinstall components that are already installed")
	addCmd.Flags().BoolVar(&addSkipInstall, "skip-install", false, "Do not run the package manager")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <component...>",
	Short: "Add components to the project",
	Long: `Add one or more registry components to the current project.

Examples:
  yantr add logger auth
  yantr add database --type postgres --orm drizzle
  yantr add security --overwrite`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := workflow.Add(cmd.Context(), newEnv(cmd, false), workflow.AddOptions{
			Dir:         ".",
			Components:  args,
			DBType:      addType,
			ORM:         addORM,
			Overwrite:   addOverwrite,
			SkipInstall: addSkipInstall,
		})
		return err
	},
}
