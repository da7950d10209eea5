// Package runtime probes the JavaScript runtimes a generated project can
// target. Probing only reports what is installed; nothing here runs
// project code.
package runtime
