package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paw-chain/paw-wallet/internal/wallet"
	"golang.org/x/term"
)

// minPasswordLen is the minimum keystore password length.
const minPasswordLen = 12

// promptSecret reads a line from the terminal with echo disabled.
func promptSecret(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return secret, nil
}

// promptNewPassword asks for a password twice and enforces the minimum
// length.
func promptNewPassword() ([]byte, error) {
	password, err := promptSecret("new password: ")
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLen {
		zero(password)
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	repeat, err := promptSecret("repeat password: ")
	if err != nil {
		zero(password)
		return nil, err
	}
	defer zero(repeat)
	if string(password) != string(repeat) {
		zero(password)
		return nil, fmt.Errorf("passwords do not match")
	}
	return password, nil
}

// promptMnemonic reads a recovery phrase from stdin and validates it before
// any derivation happens.
func promptMnemonic(in io.Reader) (string, error) {
	fmt.Fprint(os.Stderr, "recovery phrase: ")
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read mnemonic: %w", err)
	}
	mnemonic := strings.Join(strings.Fields(line), " ")
	if !wallet.ValidateMnemonic(mnemonic) {
		return "", wallet.ErrInvalidMnemonic
	}
	return mnemonic, nil
}

// confirm asks a yes/no question and returns true only on an explicit yes.
func confirm(in io.Reader, prompt string) (bool, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// zero overwrites a secret byte slice.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
