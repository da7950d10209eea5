package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// SetKind discriminates the two shapes a file or dependency list can take.
type SetKind int

const (
	// KindFlat is a plain ordered list.
	KindFlat SetKind = iota
	// KindKeyed is a mapping from a discriminator (framework, "common") to a list.
	KindKeyed
)

func (k SetKind) String() string {
	if k == KindKeyed {
		return "keyed"
	}
	return "flat"
}

// CommonKey is the discriminator used for framework-independent dependencies.
const CommonKey = "common"

// FileSet is a component's template file list: either a flat sequence of
// paths or a mapping from framework identifier to a path sequence.
type FileSet struct {
	kind        SetKind
	paths       []string
	byFramework map[string][]string
}

// FlatFiles returns a flat FileSet.
func FlatFiles(paths ...string) FileSet {
	return FileSet{kind: KindFlat, paths: paths}
}

// FrameworkFiles returns a FileSet keyed by framework.
func FrameworkFiles(byFramework map[string][]string) FileSet {
	return FileSet{kind: KindKeyed, byFramework: byFramework}
}

// Kind reports which shape the set has.
func (f FileSet) Kind() SetKind { return f.kind }

// Paths returns the flat path list. It is nil for keyed sets.
func (f FileSet) Paths() []string { return f.paths }

// ForFramework returns the list for one framework of a keyed set.
func (f FileSet) ForFramework(framework string) ([]string, bool) {
	paths, ok := f.byFramework[framework]
	return paths, ok
}

// Frameworks returns the framework keys of a keyed set, sorted.
func (f FileSet) Frameworks() []string {
	return sortedKeys(f.byFramework)
}

// UnmarshalJSON decodes either a JSON array or a JSON object.
func (f *FileSet) UnmarshalJSON(data []byte) error {
	kind, err := shapeOf(data)
	if err != nil {
		return fmt.Errorf("files: %w", err)
	}
	switch kind {
	case KindFlat:
		var paths []string
		if err := json.Unmarshal(data, &paths); err != nil {
			return fmt.Errorf("files: %w", err)
		}
		*f = FlatFiles(paths...)
	case KindKeyed:
		var m map[string][]string
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("files: %w", err)
		}
		*f = FrameworkFiles(m)
	}
	return nil
}

// MarshalJSON encodes the set in the shape it was built with.
func (f FileSet) MarshalJSON() ([]byte, error) {
	if f.kind == KindKeyed {
		return json.Marshal(f.byFramework)
	}
	if f.paths == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(f.paths)
}

// DepSet is a component's dependency list: either flat, or keyed by a
// discriminator of which only "common" is currently consulted.
type DepSet struct {
	kind  SetKind
	flat  []string
	keyed map[string][]string
}

// FlatDeps returns a flat DepSet.
func FlatDeps(pkgs ...string) DepSet {
	return DepSet{kind: KindFlat, flat: pkgs}
}

// DiscriminatedDeps returns a DepSet keyed by discriminator.
func DiscriminatedDeps(keyed map[string][]string) DepSet {
	return DepSet{kind: KindKeyed, keyed: keyed}
}

// Kind reports which shape the set has.
func (d DepSet) Kind() SetKind { return d.kind }

// Resolve returns the packages this set contributes: the flat list verbatim,
// or the "common" entry of a keyed set (nil when absent). Other keys are
// reserved and ignored.
func (d DepSet) Resolve() []string {
	switch d.kind {
	case KindKeyed:
		return d.keyed[CommonKey]
	default:
		return d.flat
	}
}

// UnmarshalJSON decodes either a JSON array or a JSON object.
func (d *DepSet) UnmarshalJSON(data []byte) error {
	kind, err := shapeOf(data)
	if err != nil {
		return fmt.Errorf("dependencies: %w", err)
	}
	switch kind {
	case KindFlat:
		var pkgs []string
		if err := json.Unmarshal(data, &pkgs); err != nil {
			return fmt.Errorf("dependencies: %w", err)
		}
		*d = FlatDeps(pkgs...)
	case KindKeyed:
		var m map[string][]string
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("dependencies: %w", err)
		}
		*d = DiscriminatedDeps(m)
	}
	return nil
}

// MarshalJSON encodes the set in the shape it was built with.
func (d DepSet) MarshalJSON() ([]byte, error) {
	if d.kind == KindKeyed {
		return json.Marshal(d.keyed)
	}
	if d.flat == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.flat)
}

// shapeOf inspects the first non-space byte of a JSON value.
func shapeOf(data []byte) (SetKind, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return KindFlat, fmt.Errorf("empty value")
	}
	switch trimmed[0] {
	case '[':
		return KindFlat, nil
	case '{':
		return KindKeyed, nil
	case 'n':
		// null decodes as an empty flat list.
		return KindFlat, nil
	default:
		return KindFlat, fmt.Errorf("expected array or object, got %s", string(trimmed))
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
