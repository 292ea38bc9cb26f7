package config

import (
	"fmt"

	"github.com/paw-chain/paw-wallet/internal/wallet"
)

// Validate checks the configuration for values that would break wallet
// operations later. Called by Load; call it again after mutating a Config.
func (c *Config) Validate() error {
	switch c.Network {
	case Mainnet, Testnet:
	default:
		return fmt.Errorf("unknown network %q", c.Network)
	}

	if c.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}

	if _, err := wallet.DeriverForMode(wallet.DerivationMode(c.Wallet.DerivationMode)); err != nil {
		return err
	}

	// A low KDF cost silently weakens every wallet encrypted after the
	// change, so it is rejected here rather than at encryption time.
	if c.Wallet.KDFIterations < 100_000 {
		return fmt.Errorf("kdf_iterations %d too low (minimum 100000)", c.Wallet.KDFIterations)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
