package installer

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// PrintPlan prints the plan as a tree of components and the files each
// will write.
func PrintPlan(w io.Writer, plan *Plan) {
	deps := Aggregate(plan)
	if len(plan.Items) == 0 {
		fmt.Fprintln(w, "  No components to add.")
		fmt.Fprintf(w, "  Dependencies: %s\n", strings.Join(deps.Prod, ", "))
		if n := len(plan.Skipped); n > 0 {
			fmt.Fprintf(w, "  (%d %s will be skipped)\n", n, pluralize(n, "selection"))
		}
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  Plan (%s, %s)\n", plan.Framework, plan.SrcDir)

	for i, item := range plan.Items {
		last := i == len(plan.Items)-1
		connector, childPrefix := "├── ", "│   "
		if last {
			connector, childPrefix = "└── ", "    "
		}

		fmt.Fprintf(w, "  %s%s: %s → %s\n", connector, item.Component, item.Label, item.TargetDir)
		for j, file := range item.Files {
			fileConnector := "├── "
			if j == len(item.Files)-1 {
				fileConnector = "└── "
			}
			fmt.Fprintf(w, "  %s%s%s\n", childPrefix, fileConnector, path.Base(file))
		}
		if len(item.Files) == 0 {
			fmt.Fprintf(w, "  %s└── (dependencies only)\n", childPrefix)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Install: %d %s, %d %s\n",
		len(plan.Items), pluralize(len(plan.Items), "component"),
		plan.Files(), pluralize(plan.Files(), "file"))
	fmt.Fprintf(w, "  Dependencies: %s\n", strings.Join(deps.Prod, ", "))
	if len(deps.Dev) > 0 {
		fmt.Fprintf(w, "  Dev dependencies: %s\n", strings.Join(deps.Dev, ", "))
	}

	if n := len(plan.Skipped); n > 0 {
		fmt.Fprintf(w, "  (%d %s will be skipped)\n", n, pluralize(n, "selection"))
	}
	fmt.Fprintln(w)
}

// PrintSummary prints one line per outcome, then the install phase result.
func PrintSummary(w io.Writer, res *Result) {
	for _, o := range res.Outcomes {
		switch o.Status {
		case Applied:
			fmt.Fprintf(w, "  ✓ %s (%d %s)\n", o.Component, len(o.Files), pluralize(len(o.Files), "file"))
		case Skipped:
			fmt.Fprintf(w, "  - %s: %s\n", o.Component, o.Reason)
		case Warned:
			fmt.Fprintf(w, "  ! %s: %s\n", o.Component, o.Reason)
			if o.Partial {
				fmt.Fprintf(w, "    %d %s written; rerun with --overwrite to complete\n", len(o.Files), pluralize(len(o.Files), "file"))
			}
		}
	}

	switch res.Install.Status {
	case Applied:
		fmt.Fprintln(w, "  ✓ dependencies installed")
	case Warned:
		fmt.Fprintf(w, "\n  Warning: %s\n", res.Install.Reason)
		printManual(w, res.Install.Commands)
	case Skipped:
		printManual(w, res.Install.Commands)
	}
}

func printManual(w io.Writer, commands []string) {
	if len(commands) == 0 {
		return
	}
	fmt.Fprintln(w, "  Install dependencies manually:")
	for _, c := range commands {
		fmt.Fprintf(w, "    %s\n", c)
	}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
