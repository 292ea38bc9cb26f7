// Package tx defines the signable payloads a wallet can authorize. Each
// payload kind has a canonical, injective byte serialization used as the
// signing input; there is no free-form key/value construction.
package tx

import (
	"encoding/binary"
	"fmt"

	"github.com/paw-chain/paw-wallet/pkg/crypto"
)

// Kind tags a signable payload type. The set is closed: verifiers reject
// unknown kinds instead of guessing at a layout.
type Kind uint8

const (
	// KindTransfer is a token transfer authorization.
	KindTransfer Kind = 1

	// KindRaw wraps an opaque byte string supplied by an external
	// transaction builder.
	KindRaw Kind = 2
)

// Message is a signable payload with a canonical serialization.
type Message interface {
	// Kind returns the payload type tag.
	Kind() Kind
	// SigningBytes returns the canonical serialization. Every field is
	// length- or width-delimited, so distinct messages never serialize to
	// the same bytes.
	SigningBytes() []byte
}

// Transfer authorizes moving an amount between two addresses.
type Transfer struct {
	From   string // bech32
	To     string // bech32
	Amount uint64
	Denom  string
	Nonce  uint64
	Memo   string
}

// Kind returns KindTransfer.
func (t *Transfer) Kind() Kind { return KindTransfer }

// SigningBytes serializes the transfer deterministically:
// kind | from | to | amount | denom | nonce | memo, with every string
// length-prefixed.
func (t *Transfer) SigningBytes() []byte {
	buf := make([]byte, 0, 1+8*3+len(t.From)+len(t.To)+len(t.Denom)+len(t.Memo)+16)
	buf = append(buf, byte(KindTransfer))
	buf = appendString(buf, t.From)
	buf = appendString(buf, t.To)
	buf = binary.LittleEndian.AppendUint64(buf, t.Amount)
	buf = appendString(buf, t.Denom)
	buf = binary.LittleEndian.AppendUint64(buf, t.Nonce)
	buf = appendString(buf, t.Memo)
	return buf
}

// Raw wraps an opaque payload from an external builder.
type Raw struct {
	Payload []byte
}

// Kind returns KindRaw.
func (r *Raw) Kind() Kind { return KindRaw }

// SigningBytes serializes the raw payload with its kind tag and length.
func (r *Raw) SigningBytes() []byte {
	buf := make([]byte, 0, 1+4+len(r.Payload))
	buf = append(buf, byte(KindRaw))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(r.Payload)))
	buf = append(buf, r.Payload...)
	return buf
}

// Sign signs a message's canonical bytes with the given signer and returns
// the 64-byte signature. The signer never exposes its private key.
func Sign(s crypto.Signer, m Message) ([]byte, error) {
	sig, err := s.Sign(m.SigningBytes())
	if err != nil {
		return nil, fmt.Errorf("sign %T: %w", m, err)
	}
	return sig, nil
}

// Verify checks a 64-byte signature over a message's canonical bytes.
func Verify(publicKey []byte, m Message, signature []byte) bool {
	return crypto.VerifySignature(publicKey, m.SigningBytes(), signature)
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}
