package workflow

import (
	"context"
	"slices"

	"github.com/yantr-labs/yantr/internal/installer"
	"github.com/yantr-labs/yantr/internal/project"
	"github.com/yantr-labs/yantr/internal/prompt"
	"github.com/yantr-labs/yantr/internal/registry"
)

// AddOptions selects components to add to an initialized project.
type AddOptions struct {
	Dir        string
	Components []string `validate:"dive,required"`
	DBType     string
	ORM        string

	Overwrite   bool
	SkipInstall bool
}

// Add installs the selected components into the project at opts.Dir.
// Naming "database" with a --type selects the database variant; without
// an ORM the first ORM listed for that type is used.
func Add(ctx context.Context, env *Env, opts AddOptions) (*Report, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	cfg, err := project.Load(dir)
	if err != nil {
		return nil, err
	}
	reg, err := env.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	var db *installer.DatabaseChoice
	components := opts.Components
	if opts.DBType != "" {
		orm := opts.ORM
		if orm == "" {
			orm = prompt.FirstORM(opts.DBType)
		}
		db = &installer.DatabaseChoice{Type: opts.DBType, ORM: orm}
		components = slices.DeleteFunc(slices.Clone(components), func(c string) bool {
			return c == registry.DatabaseComponent
		})
	}

	plan := installer.BuildPlan(reg, installer.Selections{Database: db, Components: components}, installer.Target{
		Framework: cfg.Framework,
		SrcDir:    cfg.SrcDir,
		Installed: slices.Clone(cfg.InstalledComponents),
		Overwrite: opts.Overwrite,
	})

	report := &Report{Dir: dir, Config: cfg}
	res, err := env.apply(ctx, dir, plan, cfg, opts.SkipInstall)
	report.Result = res
	if err != nil {
		return report, err
	}
	if err := recordDatabase(dir, cfg, db, res); err != nil {
		return report, err
	}
	return report, nil
}
