package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// loadOliConfig loads and parses oli.toml if it exists.
// Returns (nil, nil) when oli.toml does not exist.
func loadOliConfig(projectRoot string) (*OliFileConfig, error) {
	oliPath := filepath.Join(projectRoot, "oli.toml")

	if _, err := os.Stat(oliPath); os.IsNotExist(err) {
		return nil, nil
	}

	// .env values feed the ${VAR} references below
	envFile := filepath.Join(projectRoot, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	var cfg OliFileConfig
	if _, err := toml.DecodeFile(oliPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse oli.toml: %w", err)
	}

	// Expand environment variables in endpoint fields
	cfg.API.BaseURL = os.ExpandEnv(cfg.API.BaseURL)
	cfg.Wallet.RPCURL = os.ExpandEnv(cfg.Wallet.RPCURL)
	cfg.Attest.SchemaUID = os.ExpandEnv(cfg.Attest.SchemaUID)
	for chain, addr := range cfg.Attest.Contracts {
		cfg.Attest.Contracts[chain] = os.ExpandEnv(addr)
	}

	return &cfg, nil
}
