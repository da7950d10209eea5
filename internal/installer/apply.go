package installer

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/platform"
	"github.com/yantr-labs/yantr/internal/project"
	"github.com/yantr-labs/yantr/internal/templates"
)

// ConfigStore persists the project configuration.
type ConfigStore interface {
	Save(cfg *project.Config) error
}

// ProgressFunc is called before each plan item is applied.
type ProgressFunc func(item PlanItem, index, total int)

// Applier materializes plans into the project rooted at Root.
type Applier struct {
	Root      string
	Fetcher   templates.Fetcher
	Store     ConfigStore
	Installer pkgmanager.Installer
	Logger    zerolog.Logger

	// SkipInstall leaves dependency installation to the user.
	SkipInstall bool
	Progress    ProgressFunc
}

// Apply writes every plan item and records each component whose directory
// was created in cfg, saving after each one. It then installs the
// aggregated dependencies, which always include the baseline package.
//
// Only a configuration write failure or context cancellation is returned
// as an error; in both cases the partial Result is returned too.
func (a *Applier) Apply(ctx context.Context, plan *Plan, cfg *project.Config) (*Result, error) {
	res := &Result{}
	res.Outcomes = append(res.Outcomes, plan.Skipped...)
	for _, o := range plan.Skipped {
		a.Logger.Warn().Str("component", o.Component).Msg(o.Reason)
	}

	for i, item := range plan.Items {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if a.Progress != nil {
			a.Progress(item, i, len(plan.Items))
		}

		out, err := a.applyItem(ctx, item)
		if err != nil {
			return res, err
		}
		res.Outcomes = append(res.Outcomes, out)

		if out.Status != Applied {
			a.Logger.Warn().Str("component", out.Component).Bool("partial", out.Partial).Msg(out.Reason)
		}
		if !out.Recorded() {
			continue
		}
		if cfg.AddInstalled(item.Component) {
			if err := a.Store.Save(cfg); err != nil {
				return res, fmt.Errorf("recording %s as installed: %w", item.Component, err)
			}
		}
	}

	res.Dependencies = Aggregate(plan)
	res.Install = a.install(ctx, pkgmanager.Manager(cfg.PackageManager), res.Dependencies)
	return res, nil
}

// applyItem writes one item's files. A fetch or write failure warns the
// item, marks it partial and skips its remaining files. Only cancellation
// is returned.
func (a *Applier) applyItem(ctx context.Context, item PlanItem) (Outcome, error) {
	out := Outcome{Component: item.Component}

	dir := filepath.Join(a.Root, filepath.FromSlash(item.TargetDir))
	if err := os.MkdirAll(dir, platform.DirMode); err != nil {
		out.Status = Warned
		out.Reason = fmt.Sprintf("creating %s: %v", item.TargetDir, err)
		return out, nil
	}

	for _, file := range item.Files {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		rel, err := a.writeTemplate(ctx, file, dir, item.TargetDir)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return out, ctxErr
			}
			out.Status = Warned
			out.Reason = err.Error()
			out.Partial = true
			return out, nil
		}
		out.Files = append(out.Files, rel)
	}

	out.Status = Applied
	return out, nil
}

// writeTemplate fetches file and writes it into dir under its base name.
// It returns the written path relative to the project root.
func (a *Applier) writeTemplate(ctx context.Context, file, dir, relDir string) (string, error) {
	content, err := a.Fetcher.Fetch(ctx, file)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", file, err)
	}

	name := path.Base(file)
	dest := filepath.Join(dir, name)
	if err := os.WriteFile(dest, []byte(content), platform.FileMode); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	rel := path.Join(relDir, name)
	a.Logger.Debug().Str("file", rel).Msg("wrote template")
	return rel, nil
}

func (a *Applier) install(ctx context.Context, pm pkgmanager.Manager, deps DependencySet) InstallOutcome {
	var commands []string
	if len(deps.Prod) > 0 {
		commands = append(commands, pkgmanager.AddCommand(pm, deps.Prod, false))
	}
	if len(deps.Dev) > 0 {
		commands = append(commands, pkgmanager.AddCommand(pm, deps.Dev, true))
	}

	if a.SkipInstall || a.Installer == nil {
		return InstallOutcome{Status: Skipped, Reason: "installation skipped", Commands: commands}
	}

	if len(deps.Prod) > 0 {
		if err := a.Installer.Install(ctx, pm, deps.Prod, a.Root, false); err != nil {
			a.Logger.Warn().Err(err).Msg("dependency install failed")
			return InstallOutcome{Status: Warned, Reason: fmt.Sprintf("install failed: %v", err), Commands: commands}
		}
	}
	if len(deps.Dev) > 0 {
		if err := a.Installer.Install(ctx, pm, deps.Dev, a.Root, true); err != nil {
			a.Logger.Warn().Err(err).Msg("dev dependency install failed")
			return InstallOutcome{Status: Warned, Reason: fmt.Sprintf("dev install failed: %v", err), Commands: commands[len(commands)-1:]}
		}
	}

	return InstallOutcome{Status: Applied, Commands: commands}
}
