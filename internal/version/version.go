// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report build provenance without a ldflags-injected variable.
package version

import (
	"fmt"
	"runtime/debug"
)

// String returns the version reported by `dbox version`. Module builds
// report the module version; source builds report the short VCS
// revision, with a "(dirty)" suffix when the tree had local edits.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
