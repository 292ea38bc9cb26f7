package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestPrivateKeyFromBytes_KnownVector(t *testing.T) {
	priv, _ := hex.DecodeString("5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc1")

	key, err := PrivateKeyFromBytes(priv)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes: %v", err)
	}
	defer key.Zero()

	pub := key.PublicKey()
	want := "029058af2e7b6f0dc54d96925b80868515bf87f3158e95afce81927b3b772d5b24"
	if hex.EncodeToString(pub) != want {
		t.Errorf("PublicKey = %x, want %s", pub, want)
	}
	if !bytes.Equal(key.Serialize(), priv) {
		t.Errorf("Serialize = %x, want %x", key.Serialize(), priv)
	}
}

func TestPrivateKeyFromBytes_Invalid(t *testing.T) {
	// The secp256k1 group order.
	order, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	overOrder, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364142")

	tests := []struct {
		name string
		in   []byte
	}{
		{"nil", nil},
		{"short", make([]byte, 31)},
		{"long", make([]byte, 33)},
		{"zero scalar", make([]byte, 32)},
		{"equal to order", order},
		{"above order", overOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PrivateKeyFromBytes(tt.in); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("err = %v, want ErrInvalidKey", err)
			}
		})
	}
}

func TestPrivateKeyFromBytes_MaxValidScalar(t *testing.T) {
	// order - 1 is the largest valid scalar.
	max, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	key, err := PrivateKeyFromBytes(max)
	if err != nil {
		t.Fatalf("order-1 should be valid: %v", err)
	}
	key.Zero()
}

func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	defer k1.Zero()
	k2, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	defer k2.Zero()

	if bytes.Equal(k1.Serialize(), k2.Serialize()) {
		t.Error("two generated keys should not be identical")
	}
	if len(k1.PublicKey()) != PublicKeySize {
		t.Errorf("public key length = %d, want %d", len(k1.PublicKey()), PublicKeySize)
	}
}

func TestPrivateKey_Zero(t *testing.T) {
	key, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	key.Zero()

	if !bytes.Equal(key.Serialize(), make([]byte, PrivateKeySize)) {
		t.Error("Zero should clear the scalar")
	}
}

func TestValidatePubKey(t *testing.T) {
	valid, _ := hex.DecodeString("029058af2e7b6f0dc54d96925b80868515bf87f3158e95afce81927b3b772d5b24")
	if err := ValidatePubKey(valid); err != nil {
		t.Errorf("valid pubkey rejected: %v", err)
	}

	tests := []struct {
		name string
		in   []byte
	}{
		{"nil", nil},
		{"short", valid[:32]},
		{"bad prefix", append([]byte{0x05}, valid[1:]...)},
		{"not on curve", append(append([]byte{0x02}, make([]byte, 31)...), 0x05)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePubKey(tt.in); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("err = %v, want ErrInvalidKey", err)
			}
		})
	}
}
