// Package config handles wallet tool configuration: data directory, address
// prefix, key-derivation mode, KDF cost, and logging. Values come from
// defaults, an optional JSON config file, and PAW_* environment overrides,
// in that order.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// Config holds wallet tool configuration. Passed explicitly to the
// components that need it; there is no mutable process-global state.
type Config struct {
	Network NetworkType `json:"network" envconfig:"NETWORK"`
	DataDir string      `json:"datadir" envconfig:"DATADIR"`

	Wallet WalletConfig `json:"wallet"`
	Log    LogConfig    `json:"log"`
}

// WalletConfig holds key-derivation and keystore settings.
type WalletConfig struct {
	// DerivationMode selects the seed-to-key strategy for new wallets:
	// flat-seed (default), flat-master, or hierarchical. Stored wallets
	// keep the mode they were created with.
	DerivationMode string `json:"derivation_mode" envconfig:"DERIVATION_MODE"`

	// KDFIterations is the PBKDF2 cost for newly encrypted wallets.
	KDFIterations int `json:"kdf_iterations" envconfig:"KDF_ITERATIONS"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `json:"level" envconfig:"LOG_LEVEL"`
	JSON  bool   `json:"json" envconfig:"LOG_JSON"`
	File  string `json:"file" envconfig:"LOG_FILE"`
}

// HRP returns the bech32 address prefix for the configured network.
func (c *Config) HRP() string {
	if c.Network == Testnet {
		return "tpaw"
	}
	return "paw"
}

// KeystoreDir returns the keystore path under the data directory:
// <datadir>/<network>/keystore
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, string(c.Network), "keystore")
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.paw-wallet
//	macOS:   ~/Library/Application Support/PawWallet
//	Windows: %APPDATA%\PawWallet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".paw-wallet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "PawWallet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "PawWallet")
		}
		return filepath.Join(home, "PawWallet")
	default:
		return filepath.Join(home, ".paw-wallet")
	}
}
