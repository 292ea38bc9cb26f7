package main

import (
	"path/filepath"

	"github.com/paw-chain/paw-wallet/config"
	"github.com/paw-chain/paw-wallet/internal/log"
	"github.com/paw-chain/paw-wallet/internal/wallet"
	"github.com/spf13/cobra"
)

// cliContext carries the resolved configuration and keystore into commands.
type cliContext struct {
	cfg *config.Config
	ks  *wallet.Keystore
}

func newRootCmd() *cobra.Command {
	var (
		network    string
		dataDir    string
		configPath string
		logLevel   string
		logJSON    bool
	)

	ctx := &cliContext{}

	cmd := &cobra.Command{
		Use:   "paw-wallet",
		Short: "Manage PAW wallets: mnemonics, keys, addresses, signatures",
		Long: `paw-wallet manages PAW chain wallets locally.

Wallets are derived from BIP-39 mnemonic phrases and stored on disk only in
password-encrypted form. Transaction broadcast is out of scope: signing
output is meant to be embedded by an external transaction builder.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = filepath.Join(dataDir, "wallet.conf.json")
			}
			cfg, err := config.Load(config.NetworkType(network), configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("datadir") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-json") {
				cfg.Log.JSON = logJSON
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
				return err
			}

			ks, err := wallet.NewKeystore(cfg.KeystoreDir(), cfg.HRP(), cfg.Wallet.KDFIterations)
			if err != nil {
				return err
			}
			ctx.cfg = cfg
			ctx.ks = ks
			log.CLI.Debug().
				Str("network", string(cfg.Network)).
				Str("keystore", cfg.KeystoreDir()).
				Msg("configuration loaded")
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&network, "network", string(config.Mainnet), "network (mainnet|testnet)")
	pf.StringVar(&dataDir, "datadir", config.DefaultDataDir(), "directory for keystore and config")
	pf.StringVar(&configPath, "config", "", "config file path (default <datadir>/wallet.conf.json)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	pf.BoolVar(&logJSON, "log-json", false, "log in JSON format")

	cmd.AddCommand(
		newMnemonicCmd(ctx),
		newKeysCmd(ctx),
		newSignCmd(ctx),
		newVerifyCmd(),
	)
	return cmd
}
