package main

import (
	"fmt"
	"strings"

	"github.com/paw-chain/paw-wallet/internal/wallet"
	"github.com/spf13/cobra"
)

func newMnemonicCmd(ctx *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate and validate BIP-39 recovery phrases",
	}
	cmd.AddCommand(newMnemonicNewCmd(), newMnemonicCheckCmd())
	return cmd
}

func newMnemonicNewCmd() *cobra.Command {
	var strength int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new recovery phrase",
		Long: `Generate a new BIP-39 recovery phrase from secure random entropy.

128 bits of entropy yields 12 words, 256 bits yields 24. Write the phrase
down and store it offline: anyone holding it controls the wallet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := wallet.GenerateMnemonic(strength)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
			return nil
		},
	}
	cmd.Flags().IntVar(&strength, "strength", wallet.DefaultEntropyBits, "entropy bits (128, 160, 192, 224 or 256)")
	return cmd
}

func newMnemonicCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "Validate a recovery phrase's words and checksum",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			if !wallet.ValidateMnemonic(phrase) {
				return wallet.ErrInvalidMnemonic
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
