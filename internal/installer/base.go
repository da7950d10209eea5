package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yantr-labs/yantr/internal/platform"
	"github.com/yantr-labs/yantr/internal/registry"
	"github.com/yantr-labs/yantr/internal/templates"
)

// InstallBase writes the base component's files for framework directly
// into the library directory. Unlike plan items, any failure is returned.
func InstallBase(ctx context.Context, root, srcDir, framework string, reg *registry.Registry, fetcher templates.Fetcher) ([]string, error) {
	c, ok := reg.Lookup(registry.BaseComponent)
	if !ok {
		return nil, fmt.Errorf("registry has no %q component", registry.BaseComponent)
	}

	files, _ := c.ResolveFiles(framework)
	if len(files) == 0 {
		return nil, fmt.Errorf("no base templates for framework %s", framework)
	}

	relDir := LibraryDir(srcDir)
	dir := filepath.Join(root, filepath.FromSlash(relDir))
	if err := os.MkdirAll(dir, platform.DirMode); err != nil {
		return nil, fmt.Errorf("creating %s: %w", relDir, err)
	}

	a := &Applier{Root: root, Fetcher: fetcher}
	var written []string
	for _, file := range files {
		rel, err := a.writeTemplate(ctx, file, dir, relDir)
		if err != nil {
			return written, fmt.Errorf("installing base templates: %w", err)
		}
		written = append(written, rel)
	}
	return written, nil
}
