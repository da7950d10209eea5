//go:build integration

package integration_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/yantr-labs/yantr/internal/logging"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/templates"
	"github.com/yantr-labs/yantr/internal/workflow"
)

// testEnv wires the real collaborators: registry and templates served over
// HTTP, and package managers replaced by scripts on PATH that log their
// arguments.
type testEnv struct {
	Env     *workflow.Env
	Out     *bytes.Buffer
	WorkDir string
	LogFile string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package manager scripts need a POSIX shell")
	}

	root, err := filepath.Abs(filepath.Join("..", "..", "internal", "workflow", "testdata", "registry"))
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.FileServer(http.Dir(root)))
	t.Cleanup(srv.Close)

	binDir := t.TempDir()
	logFile := filepath.Join(t.TempDir(), "pm.log")
	for _, m := range pkgmanager.All() {
		script := "#!/bin/sh\necho \"" + string(m) + " $*\" >> \"" + logFile + "\"\n"
		writeFile(t, filepath.Join(binDir, string(m)), script)
		if err := os.Chmod(filepath.Join(binDir, string(m)), 0755); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PATH", binDir)

	var out bytes.Buffer
	return &testEnv{
		Env: &workflow.Env{
			Out:        &out,
			Logger:     logging.New(&out, true),
			Fetcher:    templates.NewSource(srv.URL),
			Installer:  &pkgmanager.ExecInstaller{Stdout: &out, Stderr: &out},
			CLIVersion: "1.0.0",
		},
		Out:     &out,
		WorkDir: t.TempDir(),
		LogFile: logFile,
	}
}

// installs returns the package manager invocations recorded so far.
func (e *testEnv) installs(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}
