package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/yantr-labs/yantr/internal/config"
	"github.com/yantr-labs/yantr/internal/installer"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/project"
	"github.com/yantr-labs/yantr/internal/prompt"
	"github.com/yantr-labs/yantr/internal/registry"
	"github.com/yantr-labs/yantr/internal/templates"
)

var (
	// ErrTargetNotEmpty is returned by Create when the project directory
	// already exists and has content.
	ErrTargetNotEmpty = errors.New("target directory exists and is not empty")

	// ErrAlreadyInitialized is returned by Init when yantr.json exists.
	ErrAlreadyInitialized = errors.New("project is already initialized")

	// ErrUnknownGenerator is returned by Generate for unsupported types.
	ErrUnknownGenerator = errors.New("unknown generator type")
)

// Env carries the collaborators every workflow needs.
type Env struct {
	Out       io.Writer
	Logger    zerolog.Logger
	Fetcher   templates.Fetcher
	Installer pkgmanager.Installer

	// Collector asks for missing selections. Nil means non-interactive.
	Collector prompt.Collector

	// RegistryName is the registry document path relative to the fetcher.
	RegistryName string
	CLIVersion   string
}

func (e *Env) registryName() string {
	if e.RegistryName == "" {
		return config.DefaultRegistryFile
	}
	return e.RegistryName
}

// loadRegistry loads the registry and warns when it needs a newer CLI.
func (e *Env) loadRegistry(ctx context.Context) (*registry.Registry, error) {
	reg, err := registry.Load(ctx, e.Fetcher, e.registryName())
	if err != nil {
		return nil, err
	}
	if err := reg.CheckCompatibility(e.CLIVersion); err != nil {
		e.Logger.Warn().Err(err).Msg("registry compatibility")
		fmt.Fprintf(e.Out, "Warning: %v\n", err)
	}
	e.Logger.Debug().Int("components", len(reg.Components)).Str("version", reg.Version).Msg("loaded registry")
	return reg, nil
}

// apply prints the plan, applies it and prints the summary.
func (e *Env) apply(ctx context.Context, dir string, plan *installer.Plan, cfg *project.Config, skipInstall bool) (*installer.Result, error) {
	installer.PrintPlan(e.Out, plan)

	a := &installer.Applier{
		Root:        dir,
		Fetcher:     e.Fetcher,
		Store:       project.Store{Dir: dir},
		Installer:   e.Installer,
		Logger:      e.Logger,
		SkipInstall: skipInstall,
		Progress: func(item installer.PlanItem, index, total int) {
			fmt.Fprintf(e.Out, "[%d/%d] Adding %s...\n", index+1, total, item.Label)
		},
	}

	res, err := a.Apply(ctx, plan, cfg)
	if res != nil {
		fmt.Fprintln(e.Out)
		installer.PrintSummary(e.Out, res)
	}
	return res, err
}

// recordDatabase stores the database choice once the database item was
// recorded as installed.
func recordDatabase(dir string, cfg *project.Config, choice *installer.DatabaseChoice, res *installer.Result) error {
	if choice == nil || res == nil {
		return nil
	}
	for _, o := range res.Outcomes {
		if o.Component == registry.DatabaseComponent && o.Recorded() {
			cfg.Database = &project.Database{Type: choice.Type, ORM: choice.ORM}
			return project.Save(dir, cfg)
		}
	}
	return nil
}
