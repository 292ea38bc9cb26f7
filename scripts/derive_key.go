// derive_key.go prints the pubkey and address for a hex-encoded private key file.
// Usage: go run scripts/derive_key.go <keyfile> [hrp]
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/paw-chain/paw-wallet/pkg/crypto"
	"github.com/paw-chain/paw-wallet/pkg/types"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: derive_key <keyfile> [hrp]")
		os.Exit(1)
	}
	hrp := types.MainnetHRP
	if len(os.Args) > 2 {
		hrp = os.Args[2]
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	keyHex := strings.TrimSpace(string(data))
	keyBytes, err := hex.DecodeString(keyHex)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	key, err := crypto.PrivateKeyFromBytes(keyBytes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer key.Zero()
	pub := key.PublicKey()
	addr, err := crypto.AddressFromPubKey(pub).Encode(hrp)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("pubkey=%s\n", hex.EncodeToString(pub))
	fmt.Printf("address=%s\n", addr)
}
