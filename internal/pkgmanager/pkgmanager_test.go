package pkgmanager

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	for _, m := range All() {
		got, ok := Parse(string(m))
		if !ok || got != m {
			t.Errorf("Parse(%q) = %q, %v", m, got, ok)
		}
	}
	if _, ok := Parse("deno"); ok {
		t.Error("Parse(deno) should fail")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		want     Manager
		detected bool
	}{
		{"none", nil, "", false},
		{"npm", []string{"package-lock.json"}, NPM, true},
		{"yarn", []string{"yarn.lock"}, Yarn, true},
		{"bun", []string{"bun.lockb"}, Bun, true},
		{"pnpm wins over npm", []string{"package-lock.json", "pnpm-lock.yaml"}, PNPM, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
					t.Fatal(err)
				}
			}
			got, ok := Detect(dir)
			if got != tt.want || ok != tt.detected {
				t.Errorf("Detect() = %q, %v, want %q, %v", got, ok, tt.want, tt.detected)
			}
		})
	}
}

func TestAddCommand(t *testing.T) {
	pkgs := []string{"zod", "pino"}
	tests := []struct {
		m    Manager
		dev  bool
		want string
	}{
		{NPM, false, "npm install zod pino"},
		{NPM, true, "npm install -D zod pino"},
		{PNPM, true, "pnpm add -D zod pino"},
		{Yarn, false, "yarn add zod pino"},
		{Bun, true, "bun add -d zod pino"},
	}

	for _, tt := range tests {
		if got := AddCommand(tt.m, pkgs, tt.dev); got != tt.want {
			t.Errorf("AddCommand(%s, dev=%v) = %q, want %q", tt.m, tt.dev, got, tt.want)
		}
	}
}

func TestAddArgsDoesNotAliasInput(t *testing.T) {
	pkgs := []string{"a"}
	args := AddArgs(PNPM, pkgs, true)
	if !reflect.DeepEqual(args, []string{"add", "-D", "a"}) {
		t.Errorf("AddArgs = %v", args)
	}
	if !reflect.DeepEqual(pkgs, []string{"a"}) {
		t.Errorf("input mutated: %v", pkgs)
	}
}

func TestInstallAndRunCommands(t *testing.T) {
	if got := InstallCommand(Yarn); got != "yarn" {
		t.Errorf("InstallCommand(yarn) = %q", got)
	}
	if got := InstallCommand(PNPM); got != "pnpm install" {
		t.Errorf("InstallCommand(pnpm) = %q", got)
	}
	if got := RunCommand(NPM, "dev"); got != "npm run dev" {
		t.Errorf("RunCommand(npm) = %q", got)
	}
	if got := RunCommand(PNPM, "dev"); got != "pnpm dev" {
		t.Errorf("RunCommand(pnpm) = %q", got)
	}
}

func TestExecInstallerMissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	inst := &ExecInstaller{}
	err := inst.Install(context.Background(), PNPM, []string{"zod"}, t.TempDir(), false)
	if err == nil {
		t.Fatal("expected error when package manager is not on PATH")
	}
}

func TestExecInstallerNoPackages(t *testing.T) {
	inst := &ExecInstaller{}
	if err := inst.Install(context.Background(), NPM, nil, t.TempDir(), false); err != nil {
		t.Errorf("Install with no packages: %v", err)
	}
}
