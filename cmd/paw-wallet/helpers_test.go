package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/paw-chain/paw-wallet/internal/wallet"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\n", false},
		{"yes", true}, // EOF without newline still counts
	}
	for _, tt := range tests {
		got, err := confirm(strings.NewReader(tt.in), "sure? ")
		if err != nil {
			t.Errorf("confirm(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPromptMnemonic(t *testing.T) {
	const phrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	got, err := promptMnemonic(strings.NewReader(phrase + "\n"))
	if err != nil {
		t.Fatalf("promptMnemonic: %v", err)
	}
	if got != phrase {
		t.Errorf("mnemonic = %q", got)
	}

	// Extra whitespace is normalized before validation.
	got, err = promptMnemonic(strings.NewReader("  " + strings.ReplaceAll(phrase, " ", "   ") + " \n"))
	if err != nil {
		t.Fatalf("promptMnemonic with extra spaces: %v", err)
	}
	if got != phrase {
		t.Errorf("normalized mnemonic = %q", got)
	}

	if _, err := promptMnemonic(strings.NewReader("definitely not a phrase\n")); !errors.Is(err, wallet.ErrInvalidMnemonic) {
		t.Errorf("err = %v, want ErrInvalidMnemonic", err)
	}
}

func TestZero(t *testing.T) {
	b := []byte("secret")
	zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not cleared", i)
		}
	}
}
