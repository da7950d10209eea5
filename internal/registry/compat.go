package registry

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckCompatibility reports whether cliVersion satisfies the registry's
// minCliVersion. Development builds ("dev", or anything that is not semver)
// and registries without a minimum are always compatible.
func (r *Registry) CheckCompatibility(cliVersion string) error {
	if r.MinCLIVersion == "" {
		return nil
	}
	current, err := parseSemver(cliVersion)
	if err != nil {
		return nil
	}
	minimum, err := parseSemver(r.MinCLIVersion)
	if err != nil {
		return fmt.Errorf("registry minCliVersion %q is not a valid version: %w", r.MinCLIVersion, err)
	}
	if current.LessThan(minimum) {
		return fmt.Errorf("registry requires CLI %s or newer, running %s", minimum, current)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
