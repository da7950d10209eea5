// Package registry models the component registry: the read-only catalogue of
// installable components, their template file lists, and their dependency
// lists. It loads and schema-validates registry documents, composes variant
// keys, and resolves the file list a component contributes for a framework.
//
// A Registry is loaded once per invocation and passed explicitly to the
// planner; nothing in this package performs file writes.
package registry
