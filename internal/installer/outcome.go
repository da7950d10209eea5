package installer

import "fmt"

// Status is the result of applying one plan item.
type Status int

const (
	Applied Status = iota
	Skipped
	Warned
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	case Warned:
		return "warned"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome records what happened to one selected component.
type Outcome struct {
	Component string
	Status    Status
	Reason    string
	Files     []string // project-relative paths written

	// Partial marks a Warned item whose target directory was created
	// before a file failed. It is still recorded as installed.
	Partial bool
}

// Recorded reports whether the component belongs in the installed set.
func (o Outcome) Recorded() bool {
	return o.Status == Applied || (o.Status == Warned && o.Partial)
}

// InstallOutcome records the dependency install phase.
type InstallOutcome struct {
	Status Status
	Reason string
	// Commands the user can run to install the dependencies manually.
	Commands []string
}

// Result is everything an Apply run produced.
type Result struct {
	Outcomes     []Outcome
	Dependencies DependencySet
	Install      InstallOutcome
}

// Applied returns the names of components that were fully materialized.
func (r *Result) Applied() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.Status == Applied {
			names = append(names, o.Component)
		}
	}
	return names
}

// Warnings returns one line per skipped or warned component, followed by
// the install phase warning if it failed.
func (r *Result) Warnings() []string {
	var lines []string
	for _, o := range r.Outcomes {
		if o.Status == Applied {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", o.Component, o.Reason))
	}
	if r.Install.Status == Warned {
		lines = append(lines, "dependencies: "+r.Install.Reason)
	}
	return lines
}

func skipped(component, format string, args ...any) Outcome {
	return Outcome{Component: component, Status: Skipped, Reason: fmt.Sprintf(format, args...)}
}
