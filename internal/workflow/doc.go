// Package workflow implements the create, init, add, generate and list
// commands on top of the registry, project, installer and scaffold
// packages. Each workflow loads the registry once and passes it down.
package workflow
