package installer

// BaselineDependency is installed into every project.
const BaselineDependency = "zod"

// DependencySet is the deduplicated install manifest of a plan.
type DependencySet struct {
	Prod []string
	Dev  []string
}

// Empty reports whether there is nothing to install.
func (d DependencySet) Empty() bool {
	return len(d.Prod) == 0 && len(d.Dev) == 0
}

// Aggregate unions the dependencies of every plan item in first-seen order.
// The baseline dependency always leads Prod.
func Aggregate(plan *Plan) DependencySet {
	prod := newOrderedSet()
	dev := newOrderedSet()

	prod.add(BaselineDependency)
	for _, item := range plan.Items {
		prod.add(item.Dependencies...)
		dev.add(item.DevDependencies...)
	}

	return DependencySet{Prod: prod.items, Dev: dev.items}
}

type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(values ...string) {
	for _, v := range values {
		if v == "" || s.seen[v] {
			continue
		}
		s.seen[v] = true
		s.items = append(s.items, v)
	}
}
