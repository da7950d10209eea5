package registry

import "sort"

// Frameworks the registry can key file lists by.
const (
	FrameworkExpress = "express"
	FrameworkHono    = "hono"
	FrameworkFastify = "fastify"
)

// DefaultFramework is consulted when a framework-specific component has no
// entry for the requested framework.
const DefaultFramework = FrameworkExpress

// Frameworks lists every known framework identifier.
var Frameworks = []string{FrameworkExpress, FrameworkHono, FrameworkFastify}

// BaseComponent names the component whose files are written into the
// library root by create and init.
const BaseComponent = "base"

// DatabaseComponent names the varianted database component.
const DatabaseComponent = "database"

// Registry is the loaded, read-only component catalogue.
type Registry struct {
	Version       string                `json:"version,omitempty"`
	MinCLIVersion string                `json:"minCliVersion,omitempty"`
	Components    map[string]*Component `json:"components"`
}

// Component is one installable unit. Components with Variants are resolved
// through ResolveVariant; the rest use Files and the dependency sets directly.
type Component struct {
	Name              string              `json:"-"`
	Label             string              `json:"name"`
	Description       string              `json:"description,omitempty"`
	FrameworkSpecific bool                `json:"frameworkSpecific,omitempty"`
	Files             FileSet             `json:"files"`
	Dependencies      DepSet              `json:"dependencies"`
	DevDependencies   DepSet              `json:"devDependencies"`
	Variants          map[string]*Variant `json:"variants,omitempty"`
}

// Variant is one concrete implementation choice of a varianted component,
// e.g. the "postgres-prisma" database variant.
type Variant struct {
	Key             string   `json:"-"`
	Label           string   `json:"label"`
	Files           []string `json:"files"`
	Dependencies    []string `json:"dependencies,omitempty"`
	DevDependencies []string `json:"devDependencies,omitempty"`
}

// HasVariants reports whether the component is variant-keyed.
func (c *Component) HasVariants() bool {
	return len(c.Variants) > 0
}

// VariantKeys returns the component's variant keys, sorted.
func (c *Component) VariantKeys() []string {
	keys := make([]string, 0, len(c.Variants))
	for k := range c.Variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
