package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/yantr-labs/yantr/internal/branding"
	"github.com/yantr-labs/yantr/internal/config"
	"github.com/yantr-labs/yantr/internal/logging"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/prompt"
	"github.com/yantr-labs/yantr/internal/templates"
	"github.com/yantr-labs/yantr/internal/workflow"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose          bool
	registryLocation string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds TypeScript backends and installs production-ready
components (auth, logging, security, database) from a component registry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().StringVar(&registryLocation, "registry", "", "Registry URL or local directory (overrides config)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// newEnv wires the workflow collaborators from flags and user config.
func newEnv(cmd *cobra.Command, interactive bool) *workflow.Env {
	location := registryLocation
	if location == "" {
		location = config.Registry()
	}

	env := &workflow.Env{
		Out:     cmd.OutOrStdout(),
		Logger:  logging.New(cmd.ErrOrStderr(), verbose),
		Fetcher: templates.NewSource(location, templates.WithTimeout(config.Timeout())),
		Installer: &pkgmanager.ExecInstaller{
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		RegistryName: config.RegistryFile(),
		CLIVersion:   buildVersion,
	}
	if interactive && isatty.IsTerminal(os.Stdin.Fd()) {
		env.Collector = prompt.SurveyCollector{}
	}
	env.Logger.Debug().Str("registry", location).Str("file", env.RegistryName).Msg("registry source")
	return env
}
