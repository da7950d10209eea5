package project

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
)

func TestNew(t *testing.T) {
	cfg := New("my-api", "./src", "hono", pkgmanager.PNPM)

	if cfg.ProjectName != "my-api" || cfg.SrcDir != "./src" || cfg.PackageManager != "pnpm" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.InstalledComponents, []string{"base"}) {
		t.Errorf("InstalledComponents = %v, want [base]", cfg.InstalledComponents)
	}
	if cfg.Schema == "" {
		t.Error("$schema should be set")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	original := New("my-api", "./src", "express", pkgmanager.NPM)
	original.AddInstalled("logger")
	original.AddInstalled("auth")
	original.Database = &Database{Type: "postgres", ORM: "prisma"}

	if err := Save(dir, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, original)
	}
}

func TestSaveFormatting(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{ProjectName: "x", SrcDir: ".", PackageManager: "npm", InstalledComponents: []string{"base"}}
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(Path(dir))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.TrimLeft(dedent.Dedent(`
		{
		  "projectName": "x",
		  "srcDir": ".",
		  "packageManager": "npm",
		  "installedComponents": [
		    "base"
		  ]
		}
	`), "\n")
	if string(data) != want {
		t.Errorf("file content:\n%s\nwant:\n%s", data, want)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only yantr.json in dir, found %d entries", len(entries))
	}
}

func TestAddInstalledIdempotent(t *testing.T) {
	cfg := New("p", ".", "", pkgmanager.NPM)

	if !cfg.AddInstalled("logger") {
		t.Error("first AddInstalled should report a change")
	}
	if cfg.AddInstalled("logger") {
		t.Error("second AddInstalled should be a no-op")
	}
	if cfg.AddInstalled("base") {
		t.Error("base is installed by New")
	}
	if len(cfg.InstalledComponents) != 2 {
		t.Errorf("InstalledComponents = %v", cfg.InstalledComponents)
	}
	if !cfg.IsInstalled("logger") || cfg.IsInstalled("auth") {
		t.Error("IsInstalled mismatch")
	}
}

func TestLoadNotInitialized(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load error = %v, want ErrNotInitialized", err)
	}
}

func TestLoadStrict(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{
			name: "unknown field",
			doc:  `{"projectName":"x","srcDir":".","packageManager":"npm","installedComponents":[],"extra":1}`,
			path: "",
		},
		{
			name: "missing projectName",
			doc:  `{"srcDir":".","packageManager":"npm","installedComponents":[]}`,
			path: "",
		},
		{
			name: "wrong type",
			doc:  `{"projectName":"x","srcDir":".","packageManager":"npm","installedComponents":"base"}`,
			path: "/installedComponents",
		},
		{
			name: "bad package manager",
			doc:  `{"projectName":"x","srcDir":".","packageManager":"deno","installedComponents":[]}`,
			path: "/packageManager",
		},
		{
			name: "duplicate installed",
			doc:  `{"projectName":"x","srcDir":".","packageManager":"npm","installedComponents":["a","a"]}`,
			path: "/installedComponents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(Path(dir), []byte(tt.doc), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(dir)
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("Load error = %v, want *SchemaError", err)
			}
			if len(se.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			if se.Issues[0].Path != tt.path {
				t.Errorf("issue path = %q, want %q (%v)", se.Issues[0].Path, tt.path, se.Issues)
			}
		})
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestSaveValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"empty name", &Config{SrcDir: ".", PackageManager: "npm"}},
		{"bad manager", &Config{ProjectName: "x", SrcDir: ".", PackageManager: "deno"}},
		{"duplicate installed", &Config{ProjectName: "x", SrcDir: ".", PackageManager: "npm", InstalledComponents: []string{"a", "a"}}},
		{"bad framework", &Config{ProjectName: "x", SrcDir: ".", PackageManager: "npm", Framework: "koa"}},
		{"incomplete database", &Config{ProjectName: "x", SrcDir: ".", PackageManager: "npm", Database: &Database{Type: "postgres"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := Save(dir, tt.cfg); err == nil {
				t.Error("expected validation error")
			}
			if Exists(dir) {
				t.Error("invalid config must not be written")
			}
		})
	}
}

func TestStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := Store{Dir: dir}
	if err := store.Save(New("p", ".", "", pkgmanager.Bun)); err != nil {
		t.Fatalf("Store.Save: %v", err)
	}
	if !Exists(dir) {
		t.Error("yantr.json not written")
	}
}
