package installer

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/yantr-labs/yantr/internal/branding"
	"github.com/yantr-labs/yantr/internal/registry"
)

// DatabaseChoice is the database × ORM selection for the varianted
// database component.
type DatabaseChoice struct {
	Type string
	ORM  string
}

// Selections are the components a user asked for.
type Selections struct {
	Database   *DatabaseChoice
	Components []string
}

// Target describes the project the plan is built for.
type Target struct {
	Framework string
	SrcDir    string
	Installed []string
	Overwrite bool
}

// PlanItem is the resolved work for one component.
type PlanItem struct {
	Component       string
	Label           string
	TargetDir       string // relative to the project root, slash-separated
	Files           []string
	Dependencies    []string
	DevDependencies []string
}

// Plan is the ordered list of items to apply. Selections that could not be
// planned are carried in Skipped.
type Plan struct {
	Framework string
	SrcDir    string
	Items     []PlanItem
	Skipped   []Outcome
}

// LibraryDir returns the directory generated library code lives in.
func LibraryDir(srcDir string) string {
	return filepath.ToSlash(filepath.Join(srcDir, "lib", branding.CLIName()))
}

// ComponentDir returns the directory a component's files are written to.
func ComponentDir(srcDir, component string) string {
	return filepath.ToSlash(filepath.Join(srcDir, "lib", branding.CLIName(), component))
}

// BuildPlan resolves sel against reg for target. The database selection is
// planned first, then flat components in selection order. Output depends
// only on the inputs.
func BuildPlan(reg *registry.Registry, sel Selections, target Target) *Plan {
	framework := target.Framework
	if framework == "" {
		framework = registry.DefaultFramework
	}
	srcDir := target.SrcDir
	if srcDir == "" {
		srcDir = "."
	}

	p := &Plan{Framework: framework, SrcDir: srcDir}
	seen := make(map[string]bool)
	installed := func(name string) bool {
		return !target.Overwrite && slices.Contains(target.Installed, name)
	}

	if db := sel.Database; db != nil && !(db.Type == "" && db.ORM == "") {
		seen[registry.DatabaseComponent] = true
		p.planDatabase(reg, *db, installed(registry.DatabaseComponent))
	}

	for _, name := range sel.Components {
		if seen[name] {
			continue
		}
		seen[name] = true

		c, ok := reg.Lookup(name)
		switch {
		case !ok:
			p.Skipped = append(p.Skipped, skipped(name, "not found in registry"))
			continue
		case c.HasVariants():
			p.Skipped = append(p.Skipped, skipped(name, "requires a variant selection (%s)", strings.Join(c.VariantKeys(), ", ")))
			continue
		case installed(name):
			p.Skipped = append(p.Skipped, skipped(name, "already installed (use --overwrite to reinstall)"))
			continue
		}

		files, _ := c.ResolveFiles(framework)
		deps := c.Dependencies.Resolve()
		devDeps := c.DevDependencies.Resolve()

		if len(files) == 0 && len(deps) == 0 && len(devDeps) == 0 {
			p.Skipped = append(p.Skipped, skipped(name, "no files for framework %s", framework))
			continue
		}

		p.Items = append(p.Items, PlanItem{
			Component:       name,
			Label:           labelOf(c.Label, name),
			TargetDir:       ComponentDir(srcDir, name),
			Files:           slices.Clone(files),
			Dependencies:    slices.Clone(deps),
			DevDependencies: slices.Clone(devDeps),
		})
	}

	return p
}

func (p *Plan) planDatabase(reg *registry.Registry, db DatabaseChoice, alreadyInstalled bool) {
	name := registry.DatabaseComponent
	switch {
	case db.Type == "":
		p.Skipped = append(p.Skipped, skipped(name, "no database type selected"))
		return
	case db.ORM == "":
		p.Skipped = append(p.Skipped, skipped(name, "no ORM selected for %s", db.Type))
		return
	case alreadyInstalled:
		p.Skipped = append(p.Skipped, skipped(name, "already installed (use --overwrite to reinstall)"))
		return
	}

	key := registry.VariantKey(db.Type, db.ORM)
	v, ok := reg.ResolveVariant(name, db.Type, db.ORM)
	if !ok {
		p.Skipped = append(p.Skipped, skipped(name, "variant %s not found in registry", key))
		return
	}

	p.Items = append(p.Items, PlanItem{
		Component:       name,
		Label:           labelOf(v.Label, key),
		TargetDir:       ComponentDir(p.SrcDir, name),
		Files:           slices.Clone(v.Files),
		Dependencies:    slices.Clone(v.Dependencies),
		DevDependencies: slices.Clone(v.DevDependencies),
	})
}

// Files returns the total number of template files across all items.
func (p *Plan) Files() int {
	n := 0
	for _, item := range p.Items {
		n += len(item.Files)
	}
	return n
}

func labelOf(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
