package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/yantr-labs/yantr/internal/project"
)

// ListEntry describes one registry component.
type ListEntry struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Variants    []string `json:"variants,omitempty"`
	Installed   bool     `json:"installed"`
}

// List returns the registry's components, marking those installed in the
// project at dir when it has a yantr.json.
func List(ctx context.Context, env *Env, dir string) ([]ListEntry, error) {
	reg, err := env.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	if dir == "" {
		dir = "."
	}
	cfg, err := project.Load(dir)
	if err != nil && !errors.Is(err, project.ErrNotInitialized) {
		return nil, err
	}

	var entries []ListEntry
	for _, name := range reg.Names() {
		c, _ := reg.Lookup(name)
		entries = append(entries, ListEntry{
			Name:        name,
			Label:       c.Label,
			Description: c.Description,
			Variants:    c.VariantKeys(),
			Installed:   cfg != nil && cfg.IsInstalled(name),
		})
	}
	return entries, nil
}

// PrintList renders entries as a table.
func PrintList(env *Env, entries []ListEntry) error {
	w := tabwriter.NewWriter(env.Out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tVARIANTS\tINSTALLED")
	for _, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = e.Label
		}
		variants := "-"
		if len(e.Variants) > 0 {
			variants = strings.Join(e.Variants, ", ")
		}
		installed := ""
		if e.Installed {
			installed = "✓"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, desc, variants, installed)
	}
	return w.Flush()
}
