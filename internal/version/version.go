package version

import (
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Name is the program name shown next to the version.
const Name = "popup-pick"

// Version is set at build time with
// -ldflags "-X github.com/atomicstack/popup-pick/internal/version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// String returns the running version. Semantic versions are normalised to
// the form "v1.2.3"; anything else is returned verbatim. Without a stamped
// version the module version from the build info is used, then "dev".
func String() string {
	raw := strings.TrimSpace(Version)
	if raw == "" {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			raw = info.Main.Version
		}
	}
	if raw == "" {
		return "dev"
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return "v" + v.String()
}

// Full is the program name followed by its version, as shown in footers.
func Full() string {
	return Name + " " + String()
}
