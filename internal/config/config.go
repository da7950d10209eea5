package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/yantr-labs/yantr/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyRegistry     = "registry"
	KeyRegistryFile = "registry_file"
	KeyTimeout      = "timeout"
)

// DefaultRegistryFile is the registry document name looked up inside the registry location.
const DefaultRegistryFile = "registry.json"

// DefaultTimeout bounds each template or registry fetch.
const DefaultTimeout = 30 * time.Second

// Dir returns the path to the config directory (~/.yantr/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.yantr/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyRegistry, branding.RegistryURL())
	viper.SetDefault(KeyRegistryFile, DefaultRegistryFile)
	viper.SetDefault(KeyTimeout, DefaultTimeout.String())

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Registry returns the registry location: an http(s) base URL or a local directory.
func Registry() string {
	return viper.GetString(KeyRegistry)
}

// RegistryFile returns the registry document path relative to the registry location.
func RegistryFile() string {
	if v := viper.GetString(KeyRegistryFile); v != "" {
		return v
	}
	return DefaultRegistryFile
}

// Timeout returns the fetch timeout, falling back to DefaultTimeout for
// missing or unparsable values.
func Timeout() time.Duration {
	d := viper.GetDuration(KeyTimeout)
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
