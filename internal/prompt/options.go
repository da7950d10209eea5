// Package prompt collects project selections interactively.
package prompt

import (
	"slices"

	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/registry"
)

// Option is one choice in a select prompt.
type Option struct {
	Value       string
	Label       string
	Recommended bool
}

// NoDatabase is the database choice that skips database setup.
const NoDatabase = "none"

// Runtimes lists the supported JavaScript runtimes.
var Runtimes = []Option{
	{Value: "node", Label: "Node.js - Standard JavaScript runtime"},
	{Value: "bun", Label: "Bun - Fast all-in-one runtime"},
}

// Frameworks lists the supported web frameworks.
var Frameworks = []Option{
	{Value: registry.FrameworkExpress, Label: "Express.js - Fast, unopinionated, minimalist"},
	{Value: registry.FrameworkHono, Label: "Hono - Ultrafast, lightweight, multi-runtime"},
	{Value: registry.FrameworkFastify, Label: "Fastify - High performance web framework"},
}

// Databases lists the database choices.
var Databases = []Option{
	{Value: "postgres", Label: "PostgreSQL"},
	{Value: "mongodb", Label: "MongoDB"},
	{Value: NoDatabase, Label: "Skip database setup"},
}

var orms = map[string][]Option{
	"postgres": {
		{Value: "prisma", Label: "Prisma (recommended)", Recommended: true},
		{Value: "drizzle", Label: "Drizzle"},
	},
	"mongodb": {
		{Value: "mongoose", Label: "Mongoose"},
	},
}

// ORMs returns the ORM choices for a database type.
func ORMs(dbType string) []Option {
	return orms[dbType]
}

// DefaultORM returns the recommended ORM for dbType, else its first option.
func DefaultORM(dbType string) string {
	opts := ORMs(dbType)
	for _, o := range opts {
		if o.Recommended {
			return o.Value
		}
	}
	if len(opts) > 0 {
		return opts[0].Value
	}
	return ""
}

// FirstORM returns the first ORM listed for dbType.
func FirstORM(dbType string) string {
	if opts := ORMs(dbType); len(opts) > 0 {
		return opts[0].Value
	}
	return ""
}

// Components returns the registry's selectable components: everything
// except the base component and varianted components, in name order.
func Components(reg *registry.Registry) []Option {
	var opts []Option
	for _, name := range reg.Names() {
		c, _ := reg.Lookup(name)
		if name == registry.BaseComponent || c.HasVariants() {
			continue
		}
		label := c.Label
		if label == "" {
			label = name
		}
		if c.Description != "" {
			label += " - " + c.Description
		}
		opts = append(opts, Option{Value: name, Label: label})
	}
	return opts
}

// PackageManagers lists the package manager choices.
func PackageManagers() []Option {
	var opts []Option
	for _, m := range pkgmanager.All() {
		opts = append(opts, Option{Value: string(m), Label: string(m)})
	}
	return opts
}

func labels(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func labelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	if len(opts) > 0 {
		return opts[0].Label
	}
	return ""
}

// selectedLabels returns the labels of the options whose values are in values.
func selectedLabels(opts []Option, values []string) []string {
	var out []string
	for _, o := range opts {
		if slices.Contains(values, o.Value) {
			out = append(out, o.Label)
		}
	}
	return out
}

func valueFor(opts []Option, label string) string {
	for _, o := range opts {
		if o.Label == label {
			return o.Value
		}
	}
	return label
}
