package registry

import (
	"sort"
	"strings"
)

// VariantKey composes a variant key by joining discriminators with "-" in
// the order given. The order is a contract with the registry's key naming:
// the database component uses "{dbType}-{orm}", e.g. "postgres-prisma".
func VariantKey(discriminators ...string) string {
	return strings.Join(discriminators, "-")
}

// Lookup returns the named component.
func (r *Registry) Lookup(name string) (*Component, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.Components[name]
	return c, ok
}

// Names returns every component name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Components))
	for name := range r.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveVariant looks up the variant keyed by the composed discriminators.
// There is no fuzzy or partial-key matching. An unknown component, a
// component without variants, an empty discriminator, or a missing key all
// yield (nil, false); callers skip with a warning rather than abort.
func (r *Registry) ResolveVariant(component string, discriminators ...string) (*Variant, bool) {
	c, ok := r.Lookup(component)
	if !ok || !c.HasVariants() || len(discriminators) == 0 {
		return nil, false
	}
	for _, d := range discriminators {
		if d == "" {
			return nil, false
		}
	}
	v, ok := c.Variants[VariantKey(discriminators...)]
	return v, ok
}

// ResolveFiles returns the template paths the component contributes for
// framework. A flat list is returned verbatim. A framework-keyed list yields
// the framework's entry, else the DefaultFramework entry (fellBack is true),
// else nil.
func (c *Component) ResolveFiles(framework string) (paths []string, fellBack bool) {
	if c.Files.Kind() == KindFlat {
		return c.Files.Paths(), false
	}
	if paths, ok := c.Files.ForFramework(framework); ok {
		return paths, false
	}
	if paths, ok := c.Files.ForFramework(DefaultFramework); ok {
		return paths, framework != DefaultFramework
	}
	return nil, false
}
