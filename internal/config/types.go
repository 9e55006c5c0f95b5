package config

import "time"

// RuntimeConfig is the resolved configuration for a single invocation.
type RuntimeConfig struct {
	// ProjectRoot is the directory containing oli.toml
	ProjectRoot string

	// DataDir holds the queue, preview and form working files
	DataDir string

	// DefaultChainID is substituted into rows added without a chain
	DefaultChainID string

	// OwnerProject is the fallback owner applied to rows without one
	OwnerProject string

	// WalletRPC is the JSON-RPC endpoint of the connected wallet bridge
	WalletRPC string

	// APIBaseURL is the platform API serving the directory, profiler and
	// contribution endpoints
	APIBaseURL string

	// Attest holds the per-chain attestation service configuration
	Attest AttestConfig

	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration
}

// AttestConfig locates the attestation service on each supported chain.
type AttestConfig struct {
	// SchemaUID identifies the contract-label schema
	SchemaUID string `toml:"schema_uid"`

	// Contracts maps CAIP-2 chain ids to attestation contract addresses
	Contracts map[string]string `toml:"contracts"`
}

// OliFileConfig mirrors the oli.toml project file.
type OliFileConfig struct {
	DefaultChain string       `toml:"default_chain"`
	OwnerProject string       `toml:"owner_project"`
	API          APIConfig    `toml:"api"`
	Wallet       WalletConfig `toml:"wallet"`
	Attest       AttestConfig `toml:"attest"`
}

// APIConfig configures the platform API client.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// WalletConfig configures the wallet bridge.
type WalletConfig struct {
	RPCURL string `toml:"rpc_url"`
}
