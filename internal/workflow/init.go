package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yantr-labs/yantr/internal/branding"
	"github.com/yantr-labs/yantr/internal/installer"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/project"
	"github.com/yantr-labs/yantr/internal/registry"
)

// InitOptions configures yantr in an existing project.
type InitOptions struct {
	Dir            string
	Framework      string `validate:"omitempty,oneof=express hono fastify"`
	PackageManager string `validate:"omitempty,oneof=npm pnpm yarn bun"`
	SkipInstall    bool
}

type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Init writes yantr.json and the base templates into an existing project.
func Init(ctx context.Context, env *Env, opts InitOptions) (*Report, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if project.Exists(dir) {
		return nil, fmt.Errorf("%s found in %s: %w", branding.ConfigFile(), dir, ErrAlreadyInitialized)
	}

	pkg := readPackageJSON(dir)
	name := pkg.Name
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", dir, err)
		}
		name = filepath.Base(abs)
	}

	srcDir := "."
	if info, err := os.Stat(filepath.Join(dir, "src")); err == nil && info.IsDir() {
		srcDir = "./src"
	}

	pm := pkgmanager.NPM
	if m, ok := pkgmanager.Parse(opts.PackageManager); ok {
		pm = m
	} else if m, ok := pkgmanager.Detect(dir); ok {
		pm = m
	}

	framework := opts.Framework
	if framework == "" {
		framework = detectFramework(pkg)
	}

	reg, err := env.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	cfg := project.New(name, srcDir, framework, pm)
	if err := project.Save(dir, cfg); err != nil {
		return nil, err
	}
	report := &Report{Dir: dir, Config: cfg, Files: []string{branding.ConfigFile()}}
	env.Logger.Debug().Str("project", name).Str("srcDir", srcDir).Str("framework", framework).Str("packageManager", string(pm)).Msg("initialized")

	base, err := installer.InstallBase(ctx, dir, srcDir, framework, reg, env.Fetcher)
	if err != nil {
		return report, err
	}
	report.Files = append(report.Files, base...)

	fmt.Fprintf(env.Out, "Initialized %s (%s, %s, %s)\n", name, framework, srcDir, pm)
	for _, f := range report.Files {
		fmt.Fprintf(env.Out, "  ✓ %s\n", f)
	}

	baseline := []string{installer.BaselineDependency}
	manual := pkgmanager.AddCommand(pm, baseline, false)
	switch {
	case opts.SkipInstall || env.Installer == nil:
		fmt.Fprintf(env.Out, "\nInstall dependencies manually:\n    %s\n", manual)
	default:
		if err := env.Installer.Install(ctx, pm, baseline, dir, false); err != nil {
			env.Logger.Warn().Err(err).Msg("dependency install failed")
			fmt.Fprintf(env.Out, "\nWarning: could not install dependencies automatically: %v\nRun: %s\n", err, manual)
		}
	}

	fmt.Fprintf(env.Out, "\nAdd components with: %s add <component>\n", branding.CLIName())
	return report, nil
}

// readPackageJSON returns the parsed package.json, or a zero value if it
// is missing or unreadable.
func readPackageJSON(dir string) packageJSON {
	var pkg packageJSON
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return pkg
	}
	_ = json.Unmarshal(data, &pkg)
	return pkg
}

// detectFramework picks the framework named in the project's dependencies.
func detectFramework(pkg packageJSON) string {
	for _, fw := range []string{registry.FrameworkHono, registry.FrameworkFastify, registry.FrameworkExpress} {
		if _, ok := pkg.Dependencies[fw]; ok {
			return fw
		}
		if _, ok := pkg.DevDependencies[fw]; ok {
			return fw
		}
	}
	return registry.DefaultFramework
}
