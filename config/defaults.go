package config

import "github.com/paw-chain/paw-wallet/internal/wallet"

// DefaultMainnet returns the default wallet configuration for mainnet.
func DefaultMainnet() *Config {
	return &Config{
		Network: Mainnet,
		DataDir: DefaultDataDir(),
		Wallet: WalletConfig{
			DerivationMode: string(wallet.ModeFlatSeed),
			KDFIterations:  wallet.DefaultKDFIterations,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// DefaultTestnet returns the default wallet configuration for testnet.
func DefaultTestnet() *Config {
	cfg := DefaultMainnet()
	cfg.Network = Testnet
	return cfg
}
