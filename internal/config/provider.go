package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".oli"),
		DefaultChainID: v.GetString("default_chain"),
		OwnerProject:   v.GetString("owner_project"),
		WalletRPC:      v.GetString("wallet_rpc"),
		APIBaseURL:     v.GetString("api_base_url"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	oliConfig, err := loadOliConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load oli.toml: %w", err)
	}
	if oliConfig != nil {
		if cfg.DefaultChainID == "" {
			cfg.DefaultChainID = oliConfig.DefaultChain
		}
		if cfg.OwnerProject == "" {
			cfg.OwnerProject = oliConfig.OwnerProject
		}
		if cfg.WalletRPC == "" {
			cfg.WalletRPC = oliConfig.Wallet.RPCURL
		}
		if cfg.APIBaseURL == "" {
			cfg.APIBaseURL = oliConfig.API.BaseURL
		}
		cfg.Attest = oliConfig.Attest
	}

	if cfg.DefaultChainID == "" {
		cfg.DefaultChainID = "eip155:8453"
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find oli.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		oliToml := filepath.Join(dir, "oli.toml")
		if _, err := os.Stat(oliToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding oli.toml
			return "", fmt.Errorf("not in an oli project (oli.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".oli"))

	// Set up environment variables
	v.SetEnvPrefix("OLI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "2m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}
