package wallet

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/paw-chain/paw-wallet/pkg/crypto"
	"github.com/paw-chain/paw-wallet/pkg/types"
)

// Wallet owns the key material derived from one mnemonic. The private key
// and seed belong exclusively to this instance for its lifetime; callers
// must release them with Close when the wallet is discarded.
type Wallet struct {
	priv *crypto.PrivateKey
	seed []byte
	mode DerivationMode
}

// stateVersion is the version tag of the serialized wallet state.
const stateVersion = 1

// walletState is the serialized (pre-encryption) wallet state. It never
// touches durable storage in this form; the keystore encrypts it first.
type walletState struct {
	Version int            `json:"version"`
	Mode    DerivationMode `json:"mode"`
	Seed    string         `json:"seed"` // hex
}

// NewWallet generates a fresh mnemonic of strengthBits entropy and derives
// a wallet from it with the given strategy. The mnemonic is returned once,
// for user backup; it is not retained.
func NewWallet(strengthBits int, d Deriver) (*Wallet, string, error) {
	mnemonic, err := GenerateMnemonic(strengthBits)
	if err != nil {
		return nil, "", err
	}
	w, err := FromMnemonic(mnemonic, "", d)
	if err != nil {
		return nil, "", err
	}
	return w, mnemonic, nil
}

// FromMnemonic derives a wallet from a recovery phrase and optional
// passphrase. The phrase is validated before any derivation happens.
func FromMnemonic(mnemonic, passphrase string, d Deriver) (*Wallet, error) {
	seed, err := SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	w, err := FromSeed(seed, d)
	zeroBytes(seed)
	return w, err
}

// FromSeed derives a wallet from a 64-byte seed. The seed is copied; the
// caller keeps ownership of its slice.
func FromSeed(seed []byte, d Deriver) (*Wallet, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	priv, err := d.DeriveKey(seed)
	if err != nil {
		return nil, err
	}
	owned := make([]byte, SeedSize)
	copy(owned, seed)
	return &Wallet{priv: priv, seed: owned, mode: d.Mode()}, nil
}

// PublicKey returns the compressed 33-byte public key.
func (w *Wallet) PublicKey() []byte {
	return w.priv.PublicKey()
}

// Address returns the wallet's address under the given HRP. The result is
// deterministic: two wallets from the same mnemonic and mode always encode
// byte-identical addresses.
func (w *Wallet) Address(hrp string) (string, error) {
	addr := crypto.AddressFromPubKey(w.PublicKey())
	s, err := addr.Encode(hrp)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return s, nil
}

// AddressBytes returns the raw 20-byte address hash.
func (w *Wallet) AddressBytes() types.Address {
	return crypto.AddressFromPubKey(w.PublicKey())
}

// Mode returns the derivation mode this wallet was created with.
func (w *Wallet) Mode() DerivationMode {
	return w.mode
}

// Sign produces a deterministic 64-byte r||s signature over SHA256(message).
func (w *Wallet) Sign(message []byte) ([]byte, error) {
	return w.priv.Sign(message)
}

// Signer exposes the wallet as a crypto.Signer for transaction builders.
// The private key itself is never handed out.
func (w *Wallet) Signer() crypto.Signer {
	return w.priv
}

// MarshalState serializes the wallet for encrypted persistence. The result
// contains the raw seed and must be passed to the keystore (or zeroed)
// immediately.
func (w *Wallet) MarshalState() ([]byte, error) {
	st := walletState{
		Version: stateVersion,
		Mode:    w.mode,
		Seed:    hex.EncodeToString(w.seed),
	}
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshal wallet state: %w", err)
	}
	return data, nil
}

// UnmarshalState reconstructs a wallet from serialized state, re-deriving
// the key with the persisted mode.
func UnmarshalState(data []byte) (*Wallet, error) {
	var st walletState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse wallet state: %w", err)
	}
	if st.Version != stateVersion {
		return nil, fmt.Errorf("unsupported wallet state version: %d", st.Version)
	}
	seed, err := hex.DecodeString(st.Seed)
	if err != nil {
		return nil, fmt.Errorf("parse wallet state: %w", err)
	}
	defer zeroBytes(seed)

	d, err := DeriverForMode(st.Mode)
	if err != nil {
		return nil, err
	}
	return FromSeed(seed, d)
}

// Close zeroes the private key and seed. The wallet must not be used after
// Close.
func (w *Wallet) Close() {
	if w.priv != nil {
		w.priv.Zero()
	}
	zeroBytes(w.seed)
}
