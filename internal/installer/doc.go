// Package installer turns component selections into a scaffold plan and
// applies it to a project directory.
//
// BuildPlan is pure: it resolves selections against a loaded registry and
// reports anything it cannot plan as a Skipped outcome instead of failing.
// An Applier then writes each item's template files, records fully applied
// components in the project configuration, and runs a single dependency
// install phase at the end. Per-component problems never abort a run; only
// configuration write failures and context cancellation do.
package installer
