package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yantr-labs/yantr/internal/project"
)

// registryDir is resolved before any test changes the working directory.
var registryDir string

func TestMain(m *testing.M) {
	dir, err := filepath.Abs(filepath.Join("..", "workflow", "testdata", "registry"))
	if err != nil {
		panic(err)
	}
	registryDir = dir
	os.Exit(m.Run())
}

// resetFlags restores every flag in the command tree to its default so
// values from one invocation do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with fresh flag state, returning
// combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// setup isolates HOME and moves into a fresh working directory.
func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func TestVersionShort(t *testing.T) {
	setup(t)
	buildVersion = "1.2.3"
	defer func() { buildVersion = "" }()

	out, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("output = %q", out)
	}
}

func TestInitAddListGenerate(t *testing.T) {
	dir := setup(t)
	reg := registryDir
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"shop"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "src"), 0755); err != nil {
		t.Fatal(err)
	}

	if out, err := runCLI(t, "init", "--registry", reg, "--skip-install"); err != nil {
		t.Fatalf("init: %v\n%s", err, out)
	}

	out, err := runCLI(t, "add", "logger", "foo", "--registry", reg, "--skip-install")
	if err != nil {
		t.Fatalf("add must succeed with an unknown component: %v\n%s", err, out)
	}
	if !strings.Contains(out, "foo: not found in registry") {
		t.Errorf("add output missing warning for foo:\n%s", out)
	}

	cfg, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.IsInstalled("logger") || cfg.IsInstalled("foo") {
		t.Errorf("InstalledComponents = %v", cfg.InstalledComponents)
	}

	out, err = runCLI(t, "list", "--registry", reg)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "logger") {
		t.Errorf("list output:\n%s", out)
	}

	if out, err := runCLI(t, "g", "route", "users", "--registry", reg); err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "src", "routes", "users.routes.ts")); err != nil {
		t.Errorf("route not generated: %v", err)
	}
}

func TestAddWithoutInit(t *testing.T) {
	setup(t)
	_, err := runCLI(t, "add", "logger", "--registry", registryDir, "--skip-install")
	if !errors.Is(err, project.ErrNotInitialized) {
		t.Errorf("err = %v, want ErrNotInitialized", err)
	}
}

func TestCreateNonInteractive(t *testing.T) {
	dir := setup(t)

	out, err := runCLI(t, "create", "my-api", "-y", "--framework", "fastify", "--components", "auth", "--registry", registryDir, "--skip-install")
	if err != nil {
		t.Fatalf("create: %v\n%s", err, out)
	}

	cfg, err := project.Load(filepath.Join(dir, "my-api"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Framework != "fastify" || !cfg.IsInstalled("auth") {
		t.Errorf("config = %+v", cfg)
	}
	if !strings.Contains(out, "fastify.setErrorHandler(errorHandler);") {
		t.Errorf("missing next steps:\n%s", out)
	}
}

func TestConfigSetGet(t *testing.T) {
	setup(t)

	if _, err := runCLI(t, "config", "set", "timeout", "5s"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	out, err := runCLI(t, "config", "get", "timeout")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "5s" {
		t.Errorf("config get timeout = %q", out)
	}

	if _, err := runCLI(t, "config", "set", "colour", "blue"); err == nil {
		t.Error("unknown key should be rejected")
	}
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := setup(t)

	if out, err := runCLI(t, "create", "first", "-y", "--framework", "hono", "--components", "auth", "--registry", registryDir, "--skip-install"); err != nil {
		t.Fatalf("create first: %v\n%s", err, out)
	}
	if out, err := runCLI(t, "create", "second", "-y", "--registry", registryDir, "--skip-install"); err != nil {
		t.Fatalf("create second: %v\n%s", err, out)
	}

	cfg, err := project.Load(filepath.Join(dir, "second"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Framework != "express" {
		t.Errorf("Framework = %q, want default express", cfg.Framework)
	}
	if cfg.IsInstalled("auth") {
		t.Errorf("InstalledComponents = %v, components leaked from previous run", cfg.InstalledComponents)
	}
}
