// Package version reports the build version stamped at link time.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is overridden with -ldflags "-X ispdesk/internal/shared/version.Version=v1.2.3".
var Version = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns the canonical semver of the running build, or "dev" when the
// binary was built without a valid release version.
func String() string {
	v := Normalize(Version)
	if !semver.IsValid(v) {
		return "dev"
	}
	return semver.Canonical(v)
}
