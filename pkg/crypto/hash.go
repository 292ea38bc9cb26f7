// Package crypto provides the cryptographic primitives for PAW wallets:
// secp256k1 key material, deterministic ECDSA signatures, and the
// SHA-256/RIPEMD-160 address hash.
package crypto

import (
	"crypto/sha256"

	"github.com/paw-chain/paw-wallet/pkg/types"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required by the address format
)

// Sha256 computes the SHA-256 digest of data.
func Sha256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// Hash160 computes RIPEMD160(SHA256(data)), the 20-byte address hash.
func Hash160(data []byte) [types.AddressSize]byte {
	first := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(first[:])

	var out [types.AddressSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

// AddressFromPubKey derives an address from a compressed public key.
// Address = RIPEMD160(SHA256(compressed_pubkey)).
func AddressFromPubKey(pubKey []byte) types.Address {
	return types.Address(Hash160(pubKey))
}
