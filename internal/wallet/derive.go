package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"

	"github.com/paw-chain/paw-wallet/pkg/crypto"
)

// DerivationMode identifies a seed-to-key mapping strategy.
//
// The flat modes reproduce the derivation used by previously issued
// addresses and must stay bit-for-bit stable; switching a wallet's mode
// changes its address, so the mode is persisted alongside the encrypted
// seed and never inferred.
type DerivationMode string

const (
	// ModeFlatSeed takes the private scalar directly from the first 32
	// bytes of the seed. This is the default compatibility mode.
	ModeFlatSeed DerivationMode = "flat-seed"

	// ModeFlatMaster takes the BIP-32 master secret,
	// HMAC-SHA512("Bitcoin seed", seed)[:32], without walking any path.
	ModeFlatMaster DerivationMode = "flat-master"

	// ModeHierarchical walks the BIP-44 path m/44'/118'/0'/0/0.
	// Opt-in: it produces different addresses than the flat modes.
	ModeHierarchical DerivationMode = "hierarchical"
)

// masterKeySeed is the HMAC key for the BIP-32 master secret.
var masterKeySeed = []byte("Bitcoin seed")

// Deriver maps a 64-byte seed to a signing key.
type Deriver interface {
	// DeriveKey derives the private key for this strategy. The seed is
	// not retained and not modified.
	DeriveKey(seed []byte) (*crypto.PrivateKey, error)
	// Mode returns the derivation mode tag this strategy implements.
	Mode() DerivationMode
}

// DeriverForMode returns the Deriver implementing the given mode.
// Hierarchical derivation uses the default account path; use
// NewHierarchicalDeriver for other paths.
func DeriverForMode(mode DerivationMode) (Deriver, error) {
	switch mode {
	case ModeFlatSeed, "":
		return FlatSeedDeriver{}, nil
	case ModeFlatMaster:
		return FlatMasterDeriver{}, nil
	case ModeHierarchical:
		return NewHierarchicalDeriver(0, ChangeExternal, 0), nil
	default:
		return nil, fmt.Errorf("unknown derivation mode %q", mode)
	}
}

// FlatSeedDeriver implements the legacy mapping: scalar = seed[:32].
type FlatSeedDeriver struct{}

// DeriveKey returns the key built from the first 32 bytes of the seed.
func (FlatSeedDeriver) DeriveKey(seed []byte) (*crypto.PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	key, err := crypto.PrivateKeyFromBytes(seed[:crypto.PrivateKeySize])
	if err != nil {
		return nil, fmt.Errorf("derive flat-seed key: %w", err)
	}
	return key, nil
}

// Mode returns ModeFlatSeed.
func (FlatSeedDeriver) Mode() DerivationMode { return ModeFlatSeed }

// FlatMasterDeriver implements the master-secret mapping:
// scalar = HMAC-SHA512("Bitcoin seed", seed)[:32].
type FlatMasterDeriver struct{}

// DeriveKey returns the key built from the BIP-32 master secret of the seed.
func (FlatMasterDeriver) DeriveKey(seed []byte) (*crypto.PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}

	mac := hmac.New(sha512.New, masterKeySeed)
	mac.Write(seed)
	sum := mac.Sum(nil)
	defer zeroBytes(sum)

	key, err := crypto.PrivateKeyFromBytes(sum[:crypto.PrivateKeySize])
	if err != nil {
		return nil, fmt.Errorf("derive flat-master key: %w", err)
	}
	return key, nil
}

// Mode returns ModeFlatMaster.
func (FlatMasterDeriver) Mode() DerivationMode { return ModeFlatMaster }

// HierarchicalDeriver walks the BIP-44 path m/44'/118'/account'/change/index.
type HierarchicalDeriver struct {
	Account uint32
	Change  uint32
	Index   uint32
}

// NewHierarchicalDeriver creates a deriver for the given BIP-44 coordinates.
func NewHierarchicalDeriver(account, change, index uint32) HierarchicalDeriver {
	return HierarchicalDeriver{Account: account, Change: change, Index: index}
}

// DeriveKey walks the BIP-44 path and returns the resulting key.
func (d HierarchicalDeriver) DeriveKey(seed []byte) (*crypto.PrivateKey, error) {
	master, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	child, err := master.DeriveAccount(d.Account, d.Change, d.Index)
	if err != nil {
		return nil, err
	}
	return child.Signer()
}

// Mode returns ModeHierarchical.
func (HierarchicalDeriver) Mode() DerivationMode { return ModeHierarchical }
