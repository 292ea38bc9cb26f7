// Package wallet implements mnemonic-based key management: BIP-39 recovery
// phrases, seed stretching, seed-to-key derivation strategies, and
// password-encrypted persistence.
package wallet

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic is the sentinel for a malformed or checksum-failing
// recovery phrase.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// ErrInvalidStrength is the sentinel for an unsupported entropy size.
var ErrInvalidStrength = errors.New("invalid entropy strength")

// Supported entropy sizes in bits. 128 bits yields 12 words, 256 yields 24.
const (
	MinEntropyBits     = 128
	MaxEntropyBits     = 256
	DefaultEntropyBits = 256
)

// GenerateMnemonic creates a new BIP-39 mnemonic from strengthBits of
// entropy drawn from crypto/rand. strengthBits must be a multiple of 32
// in [128, 256]; the resulting phrase has strengthBits/32*3 words.
func GenerateMnemonic(strengthBits int) (string, error) {
	if strengthBits < MinEntropyBits || strengthBits > MaxEntropyBits || strengthBits%32 != 0 {
		return "", fmt.Errorf("%w: %d bits (want a multiple of 32 in [128, 256])", ErrInvalidStrength, strengthBits)
	}
	entropy, err := bip39.NewEntropy(strengthBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum). Validity is a pure
// function of the word sequence; malformed input returns false, never an
// error.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
