package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Key sizes in bytes.
const (
	PrivateKeySize = 32
	// PublicKeySize is the length of a SEC1-compressed public key.
	PublicKeySize = 33
)

// ErrInvalidKey is the sentinel for invalid key material: wrong length,
// zero scalar, or a scalar not below the secp256k1 group order.
var ErrInvalidKey = errors.New("invalid key material")

// PrivateKey wraps a secp256k1 private scalar. A PrivateKey is owned by the
// wallet that derived it and must be released with Zero when discarded.
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// GenerateKey creates a new random secp256k1 private key.
func GenerateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte secret.
// The scalar is checked explicitly: it must be non-zero and strictly below
// the curve order.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d", ErrInvalidKey, PrivateKeySize, len(b))
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("%w: scalar not below curve order", ErrInvalidKey)
	}
	if scalar.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidKey)
	}

	return &PrivateKey{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

// PublicKey returns the compressed 33-byte public key.
func (pk *PrivateKey) PublicKey() []byte {
	return pk.key.PubKey().SerializeCompressed()
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// ValidatePubKey checks that b is a valid compressed secp256k1 public key.
func ValidatePubKey(b []byte) error {
	if len(b) != PublicKeySize {
		return fmt.Errorf("%w: public key must be %d bytes, got %d", ErrInvalidKey, PublicKeySize, len(b))
	}
	if _, err := secp256k1.ParsePubKey(b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return nil
}
