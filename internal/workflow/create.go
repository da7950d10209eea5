package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yantr-labs/yantr/internal/branding"
	"github.com/yantr-labs/yantr/internal/installer"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/platform"
	"github.com/yantr-labs/yantr/internal/project"
	"github.com/yantr-labs/yantr/internal/prompt"
	"github.com/yantr-labs/yantr/internal/registry"
	"github.com/yantr-labs/yantr/internal/runtime"
	"github.com/yantr-labs/yantr/internal/scaffold"
)

// CreateOptions configures a new project.
type CreateOptions struct {
	// Dir is the parent directory; the project is created in Dir/ProjectName.
	Dir            string
	ProjectName    string   `validate:"required,projectname"`
	Runtime        string   `validate:"omitempty,oneof=node bun"`
	Framework      string   `validate:"omitempty,oneof=express hono fastify"`
	PackageManager string   `validate:"omitempty,oneof=npm pnpm yarn bun"`
	DBType         string   `validate:"omitempty,oneof=postgres mongodb none"`
	ORM            string   `validate:"omitempty,oneof=prisma drizzle mongoose"`
	Components     []string `validate:"dive,required"`

	// Yes skips prompts and uses flags plus defaults.
	Yes         bool
	SkipInstall bool
}

// Report describes a completed create, init or add run.
type Report struct {
	Dir    string
	Config *project.Config
	Files  []string
	Result *installer.Result
}

// Create scaffolds a new project, installs the base templates and any
// selected components, and records them in yantr.json.
func Create(ctx context.Context, env *Env, opts CreateOptions) (*Report, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	parent := opts.Dir
	if parent == "" {
		parent = "."
	}
	dir := filepath.Join(parent, opts.ProjectName)
	if err := checkTarget(dir); err != nil {
		return nil, err
	}

	reg, err := env.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	answers, err := collectAnswers(env, reg, opts, parent)
	if err != nil {
		return nil, err
	}
	pm, ok := pkgmanager.Parse(answers.PackageManager)
	if !ok {
		return nil, fmt.Errorf("unsupported package manager %q", answers.PackageManager)
	}
	if info, err := runtime.Probe(ctx, answers.Runtime); err != nil {
		fmt.Fprintf(env.Out, "Warning: %v\n", err)
	} else {
		env.Logger.Debug().Str("runtime", info.Name).Str("version", info.Version).Msg("runtime found")
	}

	if err := os.MkdirAll(dir, platform.DirMode); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	fmt.Fprintf(env.Out, "Creating project in %s\n", dir)

	report := &Report{Dir: dir}

	gen, err := scaffold.Generate(scaffold.ProjectSet, scaffold.NewProjectData(opts.ProjectName, answers.Framework, answers.Runtime), dir)
	if err != nil {
		return nil, fmt.Errorf("writing project files: %w", err)
	}
	report.Files = append(report.Files, gen.Files...)

	cfg := project.New(opts.ProjectName, "./src", answers.Framework, pm)
	if err := project.Save(dir, cfg); err != nil {
		return nil, err
	}
	report.Config = cfg
	report.Files = append(report.Files, branding.ConfigFile())

	base, err := installer.InstallBase(ctx, dir, cfg.SrcDir, answers.Framework, reg, env.Fetcher)
	if err != nil {
		return nil, err
	}
	report.Files = append(report.Files, base...)

	var db *installer.DatabaseChoice
	if answers.DatabaseType != "" {
		db = &installer.DatabaseChoice{Type: answers.DatabaseType, ORM: answers.ORM}
	}
	plan := installer.BuildPlan(reg, installer.Selections{Database: db, Components: answers.Components}, installer.Target{
		Framework: answers.Framework,
		SrcDir:    cfg.SrcDir,
		Installed: cfg.InstalledComponents,
	})

	res, err := env.apply(ctx, dir, plan, cfg, opts.SkipInstall)
	report.Result = res
	if err != nil {
		return report, err
	}
	if err := recordDatabase(dir, cfg, db, res); err != nil {
		return report, err
	}

	printCreated(env, report)
	printNextSteps(env, opts.ProjectName, answers.Framework, cfg.Database != nil, pm)
	return report, nil
}

// checkTarget accepts a missing or empty directory. Nothing is created
// until the registry has loaded and the selections are known.
func checkTarget(dir string) error {
	entries, err := os.ReadDir(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("reading %s: %w", dir, err)
	case len(entries) > 0:
		return fmt.Errorf("%s: %w", dir, ErrTargetNotEmpty)
	}
	return nil
}

// collectAnswers merges flags with defaults, prompting for the rest
// unless the run is non-interactive.
func collectAnswers(env *Env, reg *registry.Registry, opts CreateOptions, cwd string) (*prompt.Answers, error) {
	defaults := prompt.Answers{
		Runtime:        opts.Runtime,
		Framework:      opts.Framework,
		DatabaseType:   opts.DBType,
		ORM:            opts.ORM,
		Components:     opts.Components,
		PackageManager: opts.PackageManager,
	}
	if defaults.PackageManager == "" {
		if m, ok := pkgmanager.Detect(cwd); ok {
			defaults.PackageManager = string(m)
		}
	}

	var answers *prompt.Answers
	if opts.Yes || env.Collector == nil {
		answers = &defaults
	} else {
		var err error
		answers, err = env.Collector.Collect(reg, defaults)
		if err != nil {
			return nil, err
		}
	}

	if answers.Runtime == "" {
		answers.Runtime = "node"
	}
	if answers.Framework == "" {
		answers.Framework = registry.DefaultFramework
	}
	if answers.PackageManager == "" {
		answers.PackageManager = string(pkgmanager.NPM)
	}
	if answers.DatabaseType == prompt.NoDatabase {
		answers.DatabaseType = ""
		answers.ORM = ""
	}
	if answers.DatabaseType != "" && answers.ORM == "" {
		answers.ORM = prompt.DefaultORM(answers.DatabaseType)
	}
	return answers, nil
}

func printCreated(env *Env, report *Report) {
	fmt.Fprintln(env.Out)
	fmt.Fprintln(env.Out, "Project created:")
	for _, f := range report.Files {
		fmt.Fprintf(env.Out, "  ✓ %s\n", f)
	}
	if report.Result != nil {
		for _, o := range report.Result.Outcomes {
			if o.Status == installer.Applied {
				fmt.Fprintf(env.Out, "  ✓ %s/\n", installer.ComponentDir(report.Config.SrcDir, o.Component))
			}
		}
	}
}

func printNextSteps(env *Env, name, framework string, hasDatabase bool, pm pkgmanager.Manager) {
	hook := "app.use(errorHandler);"
	switch framework {
	case registry.FrameworkHono:
		hook = "app.onError(onError);"
	case registry.FrameworkFastify:
		hook = "fastify.setErrorHandler(errorHandler);"
	}

	steps := []string{
		"cd " + name,
		"Add error handler: " + hook,
	}
	if !hasDatabase {
		steps = append(steps, "Add database: "+branding.CLIName()+" add database --type postgres")
	}
	steps = append(steps,
		"Generate routes: "+branding.CLIName()+" generate route users",
		"Start the dev server: "+pkgmanager.RunCommand(pm, "dev"),
	)

	var b strings.Builder
	for i, s := range steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}
	fmt.Fprintf(env.Out, "\nNext steps:\n%s", b.String())
}
