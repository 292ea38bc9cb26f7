package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// SignatureSize is the length of a fixed-width r||s signature.
const SignatureSize = 64

// Signer signs messages with a private key using ECDSA/secp256k1.
type Signer interface {
	// Sign produces a deterministic 64-byte r||s signature over SHA256(message).
	Sign(message []byte) ([]byte, error)
	// PublicKey returns the compressed 33-byte public key.
	PublicKey() []byte
}

// Sign produces an ECDSA signature over SHA256(message) with an RFC6979
// deterministic nonce. The result is the fixed-width 64-byte r||s form with
// S normalized to the lower half of the group order (not DER). Signing the
// same (key, message) pair twice yields identical bytes.
func (pk *PrivateKey) Sign(message []byte) ([]byte, error) {
	digest := Sha256(message)
	return pk.SignDigest(digest[:])
}

// SignDigest signs a precomputed 32-byte digest. Callers that hash the
// message themselves (e.g. over a canonical serialization) use this directly.
func (pk *PrivateKey) SignDigest(digest []byte) ([]byte, error) {
	if len(digest) != 32 {
		return nil, fmt.Errorf("%w: digest must be 32 bytes, got %d", ErrInvalidKey, len(digest))
	}

	// ecdsa.Sign uses an RFC6979 nonce and already returns the low-S form.
	sig := ecdsa.Sign(pk.key, digest)

	r := sig.R()
	s := sig.S()
	out := make([]byte, SignatureSize)
	r.PutBytesUnchecked(out[:32])
	s.PutBytesUnchecked(out[32:])
	return out, nil
}

// VerifySignature checks a 64-byte r||s signature over SHA256(message)
// against a compressed public key. Returns false on any malformed input;
// it never panics. Signatures with a high S value are rejected as
// non-canonical.
func VerifySignature(publicKey, message, signature []byte) bool {
	digest := Sha256(message)
	return VerifyDigest(publicKey, digest[:], signature)
}

// VerifyDigest checks a 64-byte r||s signature over a precomputed digest.
func VerifyDigest(publicKey, digest, signature []byte) bool {
	if len(signature) != SignatureSize || len(digest) != 32 {
		return false
	}

	pubKey, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return false
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(signature[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(signature[32:]); overflow {
		return false
	}
	if r.IsZero() || s.IsZero() {
		return false
	}
	// Only low-S signatures are canonical; the malleated twin is rejected.
	if s.IsOverHalfOrder() {
		return false
	}

	return ecdsa.NewSignature(&r, &s).Verify(digest, pubKey)
}

// ECDSAVerifier implements the Verifier interface for external callers.
type ECDSAVerifier struct{}

// Verifier verifies ECDSA/secp256k1 signatures.
type Verifier interface {
	// Verify checks a 64-byte signature against a message and compressed public key.
	Verify(publicKey, message, signature []byte) bool
}

// Verify checks a 64-byte r||s signature against SHA256(message).
func (v ECDSAVerifier) Verify(publicKey, message, signature []byte) bool {
	return VerifySignature(publicKey, message, signature)
}
