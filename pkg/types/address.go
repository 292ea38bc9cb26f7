// Package types defines the address representation and its bech32 encoding.
package types

import (
	"encoding/hex"
	"fmt"
)

// AddressSize is the length of an address in bytes.
const AddressSize = 20

// Address HRP (human-readable part) constants for bech32 encoding.
const (
	MainnetHRP = "paw"
	TestnetHRP = "tpaw"
)

// Address represents a 160-bit account address (hash of a public key).
type Address [AddressSize]byte

// AddressFromBytes copies a 20-byte slice into an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var addr Address
	if len(b) != AddressSize {
		return addr, fmt.Errorf("%w: address must be %d bytes, got %d", ErrEncoding, AddressSize, len(b))
	}
	copy(addr[:], b)
	return addr, nil
}

// ParseAddress decodes a bech32 address string and returns its HRP and address.
func ParseAddress(s string) (string, Address, error) {
	hrp, data, err := Bech32Decode(s)
	if err != nil {
		return "", Address{}, fmt.Errorf("parse address: %w", err)
	}
	addr, err := AddressFromBytes(data)
	if err != nil {
		return "", Address{}, fmt.Errorf("parse address: %w", err)
	}
	return hrp, addr, nil
}

// IsZero returns true if the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Encode returns the bech32 encoding of the address under the given HRP.
// The result is a pure function of (address, hrp): the same pair always
// yields the identical string.
func (a Address) Encode(hrp string) (string, error) {
	return Bech32Encode(hrp, a[:])
}

// String returns the mainnet bech32 encoding (e.g. "paw1...").
func (a Address) String() string {
	s, err := a.Encode(MainnetHRP)
	if err != nil {
		// Unreachable for a fixed 20-byte input; fall back to hex.
		return MainnetHRP + ":" + hex.EncodeToString(a[:])
	}
	return s
}

// Hex returns the raw hex-encoded address without prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// Bytes returns a copy of the address as a byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// Equal reports whether two addresses are the same.
func (a Address) Equal(other Address) bool {
	return a == other
}
