// Package project reads and writes a generated project's yantr.json.
//
// The file records the project's name, source directory, package manager
// and the set of components already installed. Loading is strict: unknown
// fields, missing required fields and wrong types are rejected. Saving
// always rewrites the whole file.
package project
