package pkgmanager

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Installer adds packages to the project in dir. Implementations report
// failure with an error; callers treat it as non-fatal.
type Installer interface {
	Install(ctx context.Context, m Manager, pkgs []string, dir string, dev bool) error
}

// ExecInstaller runs the package manager binary found on PATH.
type ExecInstaller struct {
	// Stdout and Stderr receive the package manager's output; default os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs `<m> add [-D] pkgs...` (or `npm install`) in dir.
func (e *ExecInstaller) Install(ctx context.Context, m Manager, pkgs []string, dir string, dev bool) error {
	if len(pkgs) == 0 {
		return nil
	}

	bin, err := exec.LookPath(string(m))
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", m, err)
	}

	cmd := exec.CommandContext(ctx, bin, AddArgs(m, pkgs, dev)...)
	cmd.Dir = dir
	cmd.Stdout = e.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s in %s: %w", AddCommand(m, pkgs, dev), dir, err)
	}
	return nil
}
