// Where: internal/devcontainer/render.go
// What: Placeholder substitution for the devcontainer template.
// Why: The template stays valid JSON only if substituted values are tame,
//      so the workspace name is gated before any file is written.
package devcontainer

import (
	"strings"
	"unicode"

	"github.com/diamonds-dev/diamondbox/internal/constants"
	"github.com/diamonds-dev/diamondbox/internal/envfile"
	"github.com/diamonds-dev/diamondbox/internal/meta"
)

// Placeholder tokens replaced verbatim in the template text.
const (
	TokenWorkspaceName = "__WORKSPACE_NAME__"
	TokenDiamondName   = "__DIAMOND_NAME__"
)

// Substitutions holds the two values rendered into the template.
type Substitutions struct {
	WorkspaceName string
	DiamondName   string
}

// SubstitutionsFrom extracts the substitution values from a mapping,
// falling back to the stock defaults for absent keys.
func SubstitutionsFrom(mapping envfile.Mapping) Substitutions {
	return Substitutions{
		WorkspaceName: mapping.Get(constants.EnvWorkspaceName, meta.DefaultWorkspaceName),
		DiamondName:   mapping.Get(constants.EnvDiamondName, meta.DefaultDiamondName),
	}
}

// Render replaces every occurrence of both placeholder tokens in the
// template text. Values are inserted as-is; callers gate them with
// ValidIdentifier first.
func Render(template string, subs Substitutions) string {
	out := strings.ReplaceAll(template, TokenWorkspaceName, subs.WorkspaceName)
	return strings.ReplaceAll(out, TokenDiamondName, subs.DiamondName)
}

// ValidIdentifier reports whether value, with underscores and hyphens
// removed, is non-empty and alphanumeric. Compose project names and
// volume names derived from the workspace name require this.
func ValidIdentifier(value string) bool {
	stripped := strings.NewReplacer("_", "", "-", "").Replace(value)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
