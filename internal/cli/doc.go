// Package cli defines the Cobra command tree for the yantr CLI. Each file
// in this package registers one top-level command (create, add, generate,
// etc.) with the root command. Command implementations delegate to the
// workflow package and only handle flag parsing and output formatting.
package cli
