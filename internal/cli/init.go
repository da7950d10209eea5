package cli

import (
	"github.com/spf13/cobra"
	"github.com/yantr-labs/yantr/internal/workflow"
)

var (
	initFramework   string
	initPM          string
	initSkipInstall bool
)

func init() {
	initCmd.Flags().StringVar(&initFramework, "framework", "", "Framework (default: detected from package.json)")
	initCmd.Flags().StringVar(&initPM, "package-manager", "", "Package manager (default: detected from lockfile)")
	initCmd.Flags().BoolVar(&initSkipInstall, "skip-install", false, "Do not run the package manager")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize yantr in an existing project",
	Long: `Create yantr.json in the current directory and install the base templates.

The project name is read from package.json, the source directory is ./src when
present, and the package manager is detected from the lockfile.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := workflow.Init(cmd.Context(), newEnv(cmd, false), workflow.InitOptions{
			Dir:            ".",
			Framework:      initFramework,
			PackageManager: initPM,
			SkipInstall:    initSkipInstall,
		})
		return err
	},
}
