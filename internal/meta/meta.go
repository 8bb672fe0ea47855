// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep branding and directory layout in one place.
package meta

const (
	// Project Identity
	AppName   = "dbox"
	Slug      = "dbox"
	EnvPrefix = "DBOX"

	// Directory Layout
	HomeDir          = ".dbox"
	DevcontainerDir  = ".devcontainer"
	EnvFileName      = ".env"
	TemplateFileName = "devcontainer.template.json"
	OutputFileName   = "devcontainer.json"

	// Substitution Defaults
	DefaultWorkspaceName = "diamonds_project"
	DefaultDiamondName   = "ExampleDiamond"
)
