// Package version reports the version of this module embedded in the
// binary's build info.
package version

import (
	"runtime/debug"
	"strings"
	"sync"

	"github.com/hashicorp/go-version"
)

const modulePath = "github.com/go-faster/mozlz4"

// Value is a parsed module version.
type Value struct {
	Major int
	Minor int
	Patch int
	Name  string // prerelease tag, "dev" for unversioned builds
	Raw   string
}

// rawVersion finds the module's version string in build info. When the
// module appears both as main and as a dependency the dependency entry
// wins: a main module built from a working tree reports "(devel)".
func rawVersion(info *debug.BuildInfo) string {
	for _, d := range info.Deps {
		if strings.HasPrefix(d.Path, modulePath) {
			return d.Version
		}
	}
	if strings.HasPrefix(info.Main.Path, modulePath) {
		return info.Main.Version
	}
	return ""
}

// Extract parses the module version from build info. Anything that does
// not parse as a version, a missing entry included, becomes the
// zero-versioned dev value.
func Extract(info *debug.BuildInfo) Value {
	raw := rawVersion(info)
	v, err := version.NewVersion(raw)
	if err != nil {
		return Value{
			Name: "dev",
			Raw:  "0.0.1-dev",
		}
	}
	out := Value{
		Name: v.Prerelease(),
		Raw:  raw,
	}
	if s := v.Segments(); len(s) > 2 {
		out.Major, out.Minor, out.Patch = s[0], s[1], s[2]
	}
	return out
}

var cached = sync.OnceValue(func() (v Value) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	return Extract(info)
})

// Get returns the version of the running binary's module, resolved once.
//
// Does not handle replace directives.
func Get() Value {
	return cached()
}
