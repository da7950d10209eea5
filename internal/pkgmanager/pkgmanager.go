package pkgmanager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manager identifies a package manager.
type Manager string

const (
	NPM  Manager = "npm"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
	Bun  Manager = "bun"
)

// All returns every supported manager.
func All() []Manager {
	return []Manager{NPM, PNPM, Yarn, Bun}
}

// Parse converts a string to a Manager, returning false if invalid.
func Parse(s string) (Manager, bool) {
	switch Manager(s) {
	case NPM, PNPM, Yarn, Bun:
		return Manager(s), true
	default:
		return "", false
	}
}

func (m Manager) String() string { return string(m) }

// lockFiles is checked in order; the first lockfile found wins.
var lockFiles = []struct {
	name    string
	manager Manager
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
	{"bun.lockb", Bun},
}

// Detect returns the manager whose lockfile is present in dir.
func Detect(dir string) (Manager, bool) {
	for _, lf := range lockFiles {
		if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
			return lf.manager, true
		}
	}
	return "", false
}

// AddArgs returns the argument list that adds pkgs with m.
func AddArgs(m Manager, pkgs []string, dev bool) []string {
	var args []string
	switch m {
	case NPM:
		args = append(args, "install")
	default:
		args = append(args, "add")
	}
	if dev {
		if m == Bun {
			args = append(args, "-d")
		} else {
			args = append(args, "-D")
		}
	}
	return append(args, pkgs...)
}

// AddCommand renders the shell command a user can run to add pkgs manually.
func AddCommand(m Manager, pkgs []string, dev bool) string {
	return strings.Join(append([]string{string(m)}, AddArgs(m, pkgs, dev)...), " ")
}

// InstallCommand returns the command that installs a project's declared dependencies.
func InstallCommand(m Manager) string {
	switch m {
	case Yarn:
		return "yarn"
	case NPM:
		return "npm install"
	default:
		return fmt.Sprintf("%s install", m)
	}
}

// RunCommand returns the command that runs a package.json script.
func RunCommand(m Manager, script string) string {
	switch m {
	case NPM, Bun:
		return fmt.Sprintf("%s run %s", m, script)
	default:
		return fmt.Sprintf("%s %s", m, script)
	}
}
