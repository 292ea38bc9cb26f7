package wallet

import (
	"bytes"
	"testing"
)

func TestNewMasterKey(t *testing.T) {
	seed := testSeed(t)

	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}
	if !master.IsPrivate() {
		t.Error("master key should be private")
	}
	if len(master.PrivateKeyBytes()) != 32 {
		t.Errorf("private key length = %d, want 32", len(master.PrivateKeyBytes()))
	}
	if len(master.PublicKeyBytes()) != 33 {
		t.Errorf("public key length = %d, want 33", len(master.PublicKeyBytes()))
	}
}

func TestNewMasterKey_WrongSeedSize(t *testing.T) {
	if _, err := NewMasterKey(make([]byte, 16)); err == nil {
		t.Error("16-byte seed accepted")
	}
}

func TestDeriveAccount_Deterministic(t *testing.T) {
	seed := testSeed(t)
	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	k1, err := master.DeriveAccount(0, ChangeExternal, 0)
	if err != nil {
		t.Fatalf("DeriveAccount: %v", err)
	}
	k2, err := master.DeriveAccount(0, ChangeExternal, 0)
	if err != nil {
		t.Fatalf("DeriveAccount: %v", err)
	}

	if !bytes.Equal(k1.PrivateKeyBytes(), k2.PrivateKeyBytes()) {
		t.Error("account derivation is not deterministic")
	}
	if !k1.Address().Equal(k2.Address()) {
		t.Error("addresses from the same path should match")
	}
}

func TestDeriveAccount_PathsDiffer(t *testing.T) {
	seed := testSeed(t)
	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	external, err := master.DeriveAccount(0, ChangeExternal, 0)
	if err != nil {
		t.Fatalf("DeriveAccount: %v", err)
	}
	internal, err := master.DeriveAccount(0, ChangeInternal, 0)
	if err != nil {
		t.Fatalf("DeriveAccount: %v", err)
	}

	if bytes.Equal(external.PrivateKeyBytes(), internal.PrivateKeyBytes()) {
		t.Error("external and internal chains should derive different keys")
	}
}

func TestHDKey_Neuter(t *testing.T) {
	seed := testSeed(t)
	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}

	pub := master.Neuter()
	if pub.IsPrivate() {
		t.Error("neutered key should not be private")
	}
	if pub.PrivateKeyBytes() != nil {
		t.Error("neutered key should have no private bytes")
	}
	if _, err := pub.Signer(); err == nil {
		t.Error("signer from a public-only key should fail")
	}
	if !bytes.Equal(pub.PublicKeyBytes(), master.PublicKeyBytes()) {
		t.Error("neutered key should keep the same public key")
	}
}

func TestHDKey_SignerMatchesKey(t *testing.T) {
	seed := testSeed(t)
	master, err := NewMasterKey(seed)
	if err != nil {
		t.Fatalf("NewMasterKey: %v", err)
	}
	child, err := master.DeriveAccount(0, ChangeExternal, 0)
	if err != nil {
		t.Fatalf("DeriveAccount: %v", err)
	}

	signer, err := child.Signer()
	if err != nil {
		t.Fatalf("Signer: %v", err)
	}
	defer signer.Zero()

	if !bytes.Equal(signer.PublicKey(), child.PublicKeyBytes()) {
		t.Error("signer public key should match the HD key")
	}
}
