package main

import (
	"fmt"

	"github.com/paw-chain/paw-wallet/internal/log"
	"github.com/paw-chain/paw-wallet/internal/wallet"
	"github.com/spf13/cobra"
)

func newKeysCmd(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the encrypted keystore",
	}
	cmd.AddCommand(
		newKeysAddCmd(ctx),
		newKeysRecoverCmd(ctx),
		newKeysListCmd(ctx),
		newKeysShowCmd(ctx),
		newKeysDeleteCmd(ctx),
	)
	return cmd
}

func newKeysAddCmd(ctx *cliContext) *cobra.Command {
	var (
		strength int
		noBackup bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new wallet and store it encrypted",
		Long: `Create a new wallet from a freshly generated mnemonic and save it to the
keystore under the given name, encrypted with a password.

The mnemonic is printed exactly once for backup. Anyone holding it can
recover the wallet without the password.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if ctx.ks.Exists(name) {
				return fmt.Errorf("wallet %q already exists", name)
			}

			deriver, err := wallet.DeriverForMode(wallet.DerivationMode(ctx.cfg.Wallet.DerivationMode))
			if err != nil {
				return err
			}

			w, mnemonic, err := wallet.NewWallet(strength, deriver)
			if err != nil {
				return err
			}
			defer w.Close()

			password, err := promptNewPassword()
			if err != nil {
				return err
			}
			defer zero(password)

			if err := ctx.ks.Create(name, w, password); err != nil {
				return err
			}

			addr, err := w.Address(ctx.cfg.HRP())
			if err != nil {
				return err
			}

			log.Keystore.Info().Str("wallet", name).Str("address", addr).Msg("wallet created")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:    %s\n", name)
			fmt.Fprintf(out, "address: %s\n", addr)
			fmt.Fprintf(out, "pubkey:  %x\n", w.PublicKey())
			if !noBackup {
				fmt.Fprintf(out, "\nRecovery phrase (write it down, it is not shown again):\n\n  %s\n", mnemonic)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&strength, "strength", wallet.DefaultEntropyBits, "mnemonic entropy bits (128, 160, 192, 224 or 256)")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip printing the recovery phrase")
	return cmd
}

func newKeysRecoverCmd(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover <name>",
		Short: "Recover a wallet from an existing recovery phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if ctx.ks.Exists(name) {
				return fmt.Errorf("wallet %q already exists", name)
			}

			mnemonic, err := promptMnemonic(cmd.InOrStdin())
			if err != nil {
				return err
			}
			passphrase, err := promptSecret("BIP-39 passphrase (empty for none): ")
			if err != nil {
				return err
			}
			defer zero(passphrase)

			deriver, err := wallet.DeriverForMode(wallet.DerivationMode(ctx.cfg.Wallet.DerivationMode))
			if err != nil {
				return err
			}

			w, err := wallet.FromMnemonic(mnemonic, string(passphrase), deriver)
			if err != nil {
				return err
			}
			defer w.Close()

			password, err := promptNewPassword()
			if err != nil {
				return err
			}
			defer zero(password)

			if err := ctx.ks.Create(name, w, password); err != nil {
				return err
			}

			addr, err := w.Address(ctx.cfg.HRP())
			if err != nil {
				return err
			}

			log.Keystore.Info().Str("wallet", name).Str("address", addr).Msg("wallet recovered")
			fmt.Fprintf(cmd.OutOrStdout(), "name:    %s\naddress: %s\n", name, addr)
			return nil
		},
	}
	return cmd
}

func newKeysListCmd(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored wallets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := ctx.ks.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				info, err := ctx.ks.Info(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", info.Name, info.Address, info.Mode)
			}
			return nil
		},
	}
}

func newKeysShowCmd(ctx *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a wallet's address and public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := ctx.ks.Info(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:    %s\n", info.Name)
			fmt.Fprintf(out, "address: %s\n", info.Address)
			fmt.Fprintf(out, "pubkey:  %s\n", info.PublicKey)
			fmt.Fprintf(out, "mode:    %s\n", info.Mode)
			fmt.Fprintf(out, "created: %s\n", info.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}

func newKeysDeleteCmd(ctx *cliContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !force {
				ok, err := confirm(cmd.InOrStdin(), fmt.Sprintf("delete wallet %q? The key is unrecoverable without its mnemonic [y/N]: ", name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}
			if err := ctx.ks.Delete(name); err != nil {
				return err
			}
			log.Keystore.Info().Str("wallet", name).Msg("wallet deleted")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	return cmd
}
