// Where: internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize variable names shared between the .env file and the compose stack.
package constants

const (
	// Project Identity
	EnvWorkspaceName = "WORKSPACE_NAME"
	EnvDiamondName   = "DIAMOND_NAME"

	// Vault Configuration
	EnvVaultCommand = "VAULT_COMMAND"
	EnvVaultPort    = "VAULT_PORT"

	// Port Mappings
	EnvHardhatPort              = "HARDHAT_PORT"
	EnvAdditionalBlockchainPort = "ADDITIONAL_BLOCKCHAIN_PORT"
	EnvFrontendPort             = "FRONTEND_PORT"
	EnvAPIPort                  = "API_PORT"
	EnvDocPort                  = "DOC_PORT"

	// CLI Configuration
	EnvConfigPath = "DBOX_CONFIG_PATH"
	EnvConfigHome = "DBOX_CONFIG_HOME"
)
