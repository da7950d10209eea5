package project

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/yantr-labs/yantr/internal/branding"
	"github.com/yantr-labs/yantr/internal/pkgmanager"
	"github.com/yantr-labs/yantr/internal/platform"
	"github.com/yantr-labs/yantr/internal/registry"
	"github.com/yantr-labs/yantr/internal/schema"
)

//go:embed schema/project.schema.json
var schemaBytes []byte

var fileSchema = schema.New("project.schema.json", schemaBytes)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrNotInitialized is returned by Load when the directory has no yantr.json.
var ErrNotInitialized = fmt.Errorf("%s not found, run `%s init` first", branding.ConfigFile(), branding.CLIName())

// SchemaError lists the ways a yantr.json document violates its schema.
type SchemaError = schema.Error

// Config is the content of yantr.json.
type Config struct {
	Schema              string    `json:"$schema,omitempty"`
	ProjectName         string    `json:"projectName" validate:"required"`
	SrcDir              string    `json:"srcDir" validate:"required"`
	PackageManager      string    `json:"packageManager" validate:"required,oneof=npm pnpm yarn bun"`
	InstalledComponents []string  `json:"installedComponents" validate:"unique,dive,required"`
	Framework           string    `json:"framework,omitempty" validate:"omitempty,oneof=express hono fastify"`
	Database            *Database `json:"database,omitempty"`
}

// Database records the database and ORM chosen for the project.
type Database struct {
	Type string `json:"type" validate:"required"`
	ORM  string `json:"orm" validate:"required"`
}

// New returns the configuration written when a project is first set up.
// The base component is always recorded as installed.
func New(projectName, srcDir, framework string, pm pkgmanager.Manager) *Config {
	return &Config{
		Schema:              branding.SchemaURL(),
		ProjectName:         projectName,
		SrcDir:              srcDir,
		PackageManager:      string(pm),
		InstalledComponents: []string{registry.BaseComponent},
		Framework:           framework,
	}
}

// Path returns the location of yantr.json inside dir.
func Path(dir string) string {
	return filepath.Join(dir, branding.ConfigFile())
}

// Exists reports whether dir contains a yantr.json.
func Exists(dir string) bool {
	_, err := os.Stat(Path(dir))
	return err == nil
}

// Load reads and validates yantr.json from dir.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", branding.ConfigFile(), err)
	}

	if err := fileSchema.Check(branding.ConfigFile(), data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", branding.ConfigFile(), err)
	}
	return &cfg, nil
}

// Save validates cfg and overwrites dir's yantr.json with it.
func Save(dir string, cfg *Config) error {
	if cfg.InstalledComponents == nil {
		cfg.InstalledComponents = []string{}
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid project config: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}
	data = append(data, '\n')

	path := Path(dir)
	tmp, err := os.CreateTemp(dir, "."+branding.ConfigFile()+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", branding.ConfigFile(), err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", branding.ConfigFile(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", branding.ConfigFile(), err)
	}
	if err := platform.Chmod(tmp.Name(), platform.FileMode); err != nil {
		return fmt.Errorf("writing %s: %w", branding.ConfigFile(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", branding.ConfigFile(), err)
	}
	return nil
}

// AddInstalled appends name to the installed set unless already present.
// It reports whether the set changed.
func (c *Config) AddInstalled(name string) bool {
	if c.IsInstalled(name) {
		return false
	}
	c.InstalledComponents = append(c.InstalledComponents, name)
	return true
}

// IsInstalled reports whether name is in the installed set.
func (c *Config) IsInstalled(name string) bool {
	return slices.Contains(c.InstalledComponents, name)
}

// Store saves configurations into a fixed project directory.
type Store struct {
	Dir string
}

// Save overwrites Dir's yantr.json with cfg.
func (s Store) Save(cfg *Config) error {
	return Save(s.Dir, cfg)
}
