package crypto

import (
	"encoding/hex"
	"testing"
)

func TestSha256_KnownVector(t *testing.T) {
	// SHA-256 of the empty string.
	got := Sha256(nil)
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("Sha256(nil) = %x, want %s", got, want)
	}
}

func TestHash160_KnownVector(t *testing.T) {
	// RIPEMD160(SHA256(pubkey)) for the flat-seed test wallet's key.
	pub, _ := hex.DecodeString("029058af2e7b6f0dc54d96925b80868515bf87f3158e95afce81927b3b772d5b24")

	got := Hash160(pub)
	want := "b9434b7a15b91719361435d5e85a130b95c14248"
	if hex.EncodeToString(got[:]) != want {
		t.Errorf("Hash160 = %x, want %s", got, want)
	}
}

func TestAddressFromPubKey_Deterministic(t *testing.T) {
	pub, _ := hex.DecodeString("03d902f35f560e0470c63313c7369168d9d7df2d49bf295fd9fb7cb109ccee0494")

	a1 := AddressFromPubKey(pub)
	a2 := AddressFromPubKey(pub)
	if !a1.Equal(a2) {
		t.Error("address derivation should be deterministic")
	}
	if a1.Hex() != "73c5da0a03d2d0803b731f04242bb40ced2f8bbc" {
		t.Errorf("address = %s", a1.Hex())
	}
}
