package main

import (
	"encoding/hex"
	"fmt"

	"github.com/paw-chain/paw-wallet/internal/log"
	"github.com/paw-chain/paw-wallet/pkg/crypto"
	"github.com/paw-chain/paw-wallet/pkg/tx"
	"github.com/spf13/cobra"
)

func newSignCmd(ctx *cliContext) *cobra.Command {
	var (
		message string
		hexMsg  bool
	)

	cmd := &cobra.Command{
		Use:   "sign <name>",
		Short: "Sign a message with a stored wallet",
		Long: `Sign a message with the wallet's private key and print the 64-byte r||s
signature as hex. Signing is deterministic: the same wallet and message
always produce the same signature.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := []byte(message)
			if hexMsg {
				decoded, err := hex.DecodeString(message)
				if err != nil {
					return fmt.Errorf("parse --message as hex: %w", err)
				}
				payload = decoded
			}

			password, err := promptSecret("password: ")
			if err != nil {
				return err
			}
			defer zero(password)

			w, err := ctx.ks.Load(args[0], password)
			if err != nil {
				return err
			}
			defer w.Close()

			sig, err := tx.Sign(w.Signer(), &tx.Raw{Payload: payload})
			if err != nil {
				return err
			}
			log.Wallet.Debug().Str("wallet", args[0]).Int("bytes", len(payload)).Msg("message signed")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pubkey:    %x\n", w.PublicKey())
			fmt.Fprintf(out, "signature: %x\n", sig)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to sign")
	cmd.Flags().BoolVar(&hexMsg, "hex", false, "treat --message as hex bytes")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var (
		pubKeyHex string
		message   string
		hexMsg    bool
		sigHex    string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a public key and message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pubKey, err := hex.DecodeString(pubKeyHex)
			if err != nil {
				return fmt.Errorf("parse --pubkey: %w", err)
			}
			if err := crypto.ValidatePubKey(pubKey); err != nil {
				return err
			}
			sig, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("parse --signature: %w", err)
			}

			payload := []byte(message)
			if hexMsg {
				decoded, err := hex.DecodeString(message)
				if err != nil {
					return fmt.Errorf("parse --message as hex: %w", err)
				}
				payload = decoded
			}

			if !tx.Verify(pubKey, &tx.Raw{Payload: payload}, sig) {
				return fmt.Errorf("signature does not verify")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubKeyHex, "pubkey", "", "compressed public key (hex)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "signed message")
	cmd.Flags().BoolVar(&hexMsg, "hex", false, "treat --message as hex bytes")
	cmd.Flags().StringVar(&sigHex, "signature", "", "64-byte r||s signature (hex)")
	_ = cmd.MarkFlagRequired("pubkey")
	_ = cmd.MarkFlagRequired("message")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
