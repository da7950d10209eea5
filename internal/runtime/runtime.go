package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Supported runtime identifiers.
const (
	Node = "node"
	Bun  = "bun"
)

// ErrUnknownRuntime is returned by Probe for identifiers other than
// Node and Bun.
var ErrUnknownRuntime = errors.New("unknown runtime")

const probeTimeout = 5 * time.Second

// Info describes an installed runtime.
type Info struct {
	Name    string
	Path    string
	Version string
}

// Probe locates the runtime binary on PATH and asks it for its version.
func Probe(ctx context.Context, name string) (*Info, error) {
	switch name {
	case Node, Bun:
	default:
		return nil, fmt.Errorf("%w %q: supported runtimes are %q and %q", ErrUnknownRuntime, name, Node, Bun)
	}

	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s runtime not found: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running %s --version: %w", name, err)
	}

	return &Info{
		Name:    name,
		Path:    bin,
		Version: strings.TrimPrefix(strings.TrimSpace(stdout.String()), "v"),
	}, nil
}
