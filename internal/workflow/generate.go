package workflow

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/yantr-labs/yantr/internal/project"
	"github.com/yantr-labs/yantr/internal/registry"
	"github.com/yantr-labs/yantr/internal/scaffold"
)

// Generators lists the supported generate types.
var Generators = []string{"route"}

// GenerateOptions names the file to generate.
type GenerateOptions struct {
	Dir  string
	Type string `validate:"required"`
	Name string `validate:"required,ident"`
}

// Generate renders a framework-specific file into the project. Only
// routes are supported; they are written to <srcDir>/routes.
func Generate(_ context.Context, env *Env, opts GenerateOptions) ([]string, error) {
	if opts.Type != "route" {
		return nil, fmt.Errorf("%q (available: %v): %w", opts.Type, Generators, ErrUnknownGenerator)
	}
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

	framework := cfg.Framework
	if framework == "" {
		framework = registry.DefaultFramework
	}

	relDir := path.Join(filepath.ToSlash(cfg.SrcDir), "routes")
	data := scaffold.NewNamedData(opts.Name, framework)
	res, err := scaffold.Generate(scaffold.RouteSet(framework), data, filepath.Join(dir, filepath.FromSlash(relDir)))
	if err != nil {
		return nil, fmt.Errorf("generating route %s: %w", opts.Name, err)
	}

	var files []string
	for _, f := range res.Files {
		rel := path.Join(relDir, f)
		files = append(files, rel)
		fmt.Fprintf(env.Out, "  ✓ %s\n", rel)
	}
	return files, nil
}
