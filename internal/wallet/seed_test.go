package wallet

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestSeedFromMnemonic_KnownVector_EmptyPassphrase(t *testing.T) {
	seed, err := SeedFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	if len(seed) != SeedSize {
		t.Fatalf("seed length = %d, want %d", len(seed), SeedSize)
	}

	want, _ := hex.DecodeString("5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4")
	if !bytes.Equal(seed, want) {
		t.Errorf("seed = %x, want %x", seed, want)
	}
}

func TestSeedFromMnemonic_KnownVector_TREZOR(t *testing.T) {
	// Published BIP-39 test vector with passphrase "TREZOR".
	seed, err := SeedFromMnemonic(testMnemonic, "TREZOR")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}

	want, _ := hex.DecodeString("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")
	if !bytes.Equal(seed, want) {
		t.Errorf("seed = %x, want %x", seed, want)
	}
}

func TestSeedFromMnemonic_PassphraseChanges(t *testing.T) {
	seed1, err := SeedFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	seed2, err := SeedFromMnemonic(testMnemonic, "my passphrase")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}

	if bytes.Equal(seed1, seed2) {
		t.Error("different passphrases should produce different seeds")
	}
}

func TestSeedFromMnemonic_Deterministic(t *testing.T) {
	seed1, err := SeedFromMnemonic(testMnemonic, "test")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}
	seed2, err := SeedFromMnemonic(testMnemonic, "test")
	if err != nil {
		t.Fatalf("SeedFromMnemonic() error: %v", err)
	}

	if !bytes.Equal(seed1, seed2) {
		t.Error("same mnemonic + passphrase should produce same seed")
	}
}

func TestSeedFromMnemonic_InvalidMnemonic(t *testing.T) {
	// Fail fast: no seed is derived from a bad phrase.
	for _, phrase := range []string{"", "not valid words here", "abandon abandon"} {
		if _, err := SeedFromMnemonic(phrase, ""); !errors.Is(err, ErrInvalidMnemonic) {
			t.Errorf("SeedFromMnemonic(%q) err = %v, want ErrInvalidMnemonic", phrase, err)
		}
	}
}
