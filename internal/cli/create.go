package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yantr-labs/yantr/internal/prompt"
	"github.com/yantr-labs/yantr/internal/workflow"
)

var (
	createYes         bool
	createRuntime     string
	createFramework   string
	createPM          string
	createDBType      string
	createORM         string
	createComponents  []string
	createSkipInstall bool
)

func init() {
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "Skip prompts and use defaults")
	createCmd.Flags().StringVar(&createRuntime, "runtime", "", "Runtime (node, bun)")
	createCmd.Flags().StringVar(&createFramework, "framework", "", "Framework (express, hono, fastify)")
	createCmd.Flags().StringVar(&createPM, "package-manager", "", "Package manager (npm, pnpm, yarn, bun)")
	createCmd.Flags().StringVar(&createDBType, "db-type", "", "Database (postgres, mongodb)")
	createCmd.Flags().StringVar(&createORM, "orm", "", "ORM for the database (prisma, drizzle, mongoose)")
	createCmd.Flags().StringSliceVar(&createComponents, "components", nil, "Additional components to install")
	createCmd.Flags().BoolVar(&createSkipInstall, "skip-install", false, "Do not run the package manager")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <project-name>",
	Short: "Create a new backend project",
	Long: `Create a new TypeScript backend project with base templates and optional components.

Examples:
  yantr create my-api
  yantr create my-api -y --framework hono --runtime bun
  yantr create my-api -y --db-type postgres --orm prisma --components auth,logger`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := newEnv(cmd, !createYes)
		_, err := workflow.Create(cmd.Context(), env, workflow.CreateOptions{
			ProjectName:    args[0],
			Runtime:        createRuntime,
			Framework:      createFramework,
			PackageManager: createPM,
			DBType:         createDBType,
			ORM:            createORM,
			Components:     createComponents,
			Yes:            createYes,
			SkipInstall:    createSkipInstall,
		})
		if errors.Is(err, prompt.ErrCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Project creation cancelled.")
			return nil
		}
		return err
	},
}
