// Package config manages user-level settings stored at ~/.yantr/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the registry location that templates and the component registry are fetched from.
package config
