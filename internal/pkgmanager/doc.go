// Package pkgmanager knows the JavaScript package managers a generated
// project can use: how to detect one from a lockfile, how to spell its
// "add packages" command, and how to run it.
package pkgmanager
