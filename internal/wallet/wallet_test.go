package wallet

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/paw-chain/paw-wallet/pkg/types"
)

func TestFromMnemonic_KnownVector(t *testing.T) {
	w, err := FromMnemonic(testMnemonic, "", FlatSeedDeriver{})
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	defer w.Close()

	wantPub := "029058af2e7b6f0dc54d96925b80868515bf87f3158e95afce81927b3b772d5b24"
	if got := hex.EncodeToString(w.PublicKey()); got != wantPub {
		t.Errorf("public key = %s, want %s", got, wantPub)
	}

	addr, err := w.Address(types.MainnetHRP)
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	if addr != "paw1h9p5k7s4hyt3jds5xh27sksnpw2uzsjgkqxecm" {
		t.Errorf("address = %s", addr)
	}
}

func TestFromMnemonic_FlatMasterVector(t *testing.T) {
	w, err := FromMnemonic(testMnemonic, "", FlatMasterDeriver{})
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	defer w.Close()

	addr, err := w.Address(types.MainnetHRP)
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	if addr != "paw1w0za5zsr6tggqwmnruzzg2a5pnkjlzauguaq2l" {
		t.Errorf("address = %s", addr)
	}
}

func TestFromMnemonic_AddressDeterminism(t *testing.T) {
	w1, err := FromMnemonic(testMnemonic, "", FlatSeedDeriver{})
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	defer w1.Close()
	w2, err := FromMnemonic(testMnemonic, "", FlatSeedDeriver{})
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	defer w2.Close()

	a1, err := w1.Address(types.MainnetHRP)
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	a2, err := w2.Address(types.MainnetHRP)
	if err != nil {
		t.Fatalf("Address: %v", err)
	}
	if a1 != a2 {
		t.Errorf("same mnemonic produced different addresses: %s != %s", a1, a2)
	}
}

func TestFromMnemonic_InvalidPhrase(t *testing.T) {
	if _, err := FromMnemonic("twelve bogus words that are not in the official list at all", "", FlatSeedDeriver{}); !errors.Is(err, ErrInvalidMnemonic) {
		t.Errorf("err = %v, want ErrInvalidMnemonic", err)
	}
}

func TestNewWallet(t *testing.T) {
	w, mnemonic, err := NewWallet(128, FlatSeedDeriver{})
	if err != nil {
		t.Fatalf("NewWallet: %v", err)
	}
	defer w.Close()

	if !ValidateMnemonic(mnemonic) {
		t.Error("NewWallet returned an invalid mnemonic")
	}

	// The returned mnemonic must reproduce the wallet.
	again, err := FromMnemonic(mnemonic, "", FlatSeedDeriver{})
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	defer again.Close()
	if !bytes.Equal(w.PublicKey(), again.PublicKey()) {
		t.Error("mnemonic does not reproduce the wallet")
	}
}

func TestWallet_Sign(t *testing.T) {
	w, err := FromMnemonic(testMnemonic, "", FlatSeedDeriver{})
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	defer w.Close()

	message := []byte("payload from an external builder")
	sig1, err := w.Sign(message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig2, err := w.Sign(message)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !bytes.Equal(sig1, sig2) {
		t.Error("wallet signatures should be deterministic")
	}
	if len(sig1) != 64 {
		t.Errorf("signature length = %d, want 64", len(sig1))
	}
}

func TestWallet_StateRoundtrip(t *testing.T) {
	w, err := FromMnemonic(testMnemonic, "", FlatMasterDeriver{})
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	defer w.Close()

	state, err := w.MarshalState()
	if err != nil {
		t.Fatalf("MarshalState: %v", err)
	}

	restored, err := UnmarshalState(state)
	if err != nil {
		t.Fatalf("UnmarshalState: %v", err)
	}
	defer restored.Close()

	if restored.Mode() != ModeFlatMaster {
		t.Errorf("restored mode = %q, want %q", restored.Mode(), ModeFlatMaster)
	}
	if !bytes.Equal(w.PublicKey(), restored.PublicKey()) {
		t.Error("restored wallet has a different key")
	}
	if !w.AddressBytes().Equal(restored.AddressBytes()) {
		t.Error("restored wallet has a different address")
	}
}

func TestUnmarshalState_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"garbage", []byte("not json")},
		{"wrong version", []byte(`{"version":9,"mode":"flat-seed","seed":"00"}`)},
		{"bad seed hex", []byte(`{"version":1,"mode":"flat-seed","seed":"zz"}`)},
		{"short seed", []byte(`{"version":1,"mode":"flat-seed","seed":"00ff"}`)},
		{"unknown mode", []byte(`{"version":1,"mode":"quantum","seed":"00"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalState(tt.in); err == nil {
				t.Error("invalid state accepted")
			}
		})
	}
}
