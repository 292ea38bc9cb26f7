// paw-wallet is a command-line tool for managing PAW wallets: mnemonic
// generation and recovery, address derivation, message signing, and an
// encrypted on-disk keystore.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// One line to stderr; key material never appears in error paths.
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
