// Package branding provides compile-time identity values for the CLI.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	ConfigFile  string `yaml:"config_file"`
	SchemaURL   string `yaml:"schema_url"`
	RegistryURL string `yaml:"registry_url"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "yantr",
			DisplayName: "YantrJS",
			Description: "Production-grade backend scaffolding for TypeScript projects",
			HomeDir:     ".yantr",
			EnvPrefix:   "YANTR",
			GoModule:    "github.com/yantr-labs/yantr",
			ConfigFile:  "yantr.json",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "yantr").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "YantrJS").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".yantr").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "YANTR").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ConfigFile returns the name of the per-project state file (e.g., "yantr.json").
func ConfigFile() string { load(); return defaults.ConfigFile }

// SchemaURL returns the value written to the "$schema" key of new project files.
func SchemaURL() string { load(); return defaults.SchemaURL }

// RegistryURL returns the default registry and template source location.
func RegistryURL() string { load(); return defaults.RegistryURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("REGISTRY") → "YANTR_REGISTRY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
