package wallet

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// keystoreFile is the on-disk JSON format for an encrypted wallet. Only the
// blob holds secret material; address and public key are stored in the
// clear so listing does not require the password.
type keystoreFile struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Mode      string    `json:"mode"`
	Address   string    `json:"address"` // bech32, informational
	PublicKey string    `json:"public_key"`
	Blob      *Blob     `json:"blob"`
}

// WalletInfo is the public metadata of a stored wallet.
type WalletInfo struct {
	Name      string
	Address   string
	PublicKey string
	Mode      DerivationMode
	CreatedAt time.Time
}

// Keystore manages encrypted wallet files on disk.
type Keystore struct {
	path       string
	hrp        string
	iterations int
}

// NewKeystore creates a keystore that reads/writes to the given directory.
// The directory is created if it doesn't exist. hrp is the address prefix
// recorded in wallet metadata; iterations is the PBKDF2 cost for new blobs.
func NewKeystore(path, hrp string, iterations int) (*Keystore, error) {
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}
	return &Keystore{path: path, hrp: hrp, iterations: iterations}, nil
}

// walletPath returns the file path for a wallet by name.
func (ks *Keystore) walletPath(name string) string {
	return filepath.Join(ks.path, name+".wallet")
}

// Exists reports whether a wallet with the given name is stored.
func (ks *Keystore) Exists(name string) bool {
	_, err := os.Stat(ks.walletPath(name))
	return err == nil
}

// Create encrypts a wallet's state under the password and writes it as a
// new wallet file. Fails if the name is already taken.
func (ks *Keystore) Create(name string, w *Wallet, password []byte) error {
	path := ks.walletPath(name)
	if ks.Exists(name) {
		return fmt.Errorf("wallet %q already exists", name)
	}

	state, err := w.MarshalState()
	if err != nil {
		return err
	}
	blob, err := EncryptWithIterations(state, password, ks.iterations)
	zeroBytes(state)
	if err != nil {
		return fmt.Errorf("encrypt wallet: %w", err)
	}

	addr, err := w.Address(ks.hrp)
	if err != nil {
		return err
	}

	kf := keystoreFile{
		Version:   1,
		CreatedAt: time.Now().UTC(),
		Mode:      string(w.Mode()),
		Address:   addr,
		PublicKey: hex.EncodeToString(w.PublicKey()),
		Blob:      blob,
	}
	return ks.writeFile(path, &kf)
}

// Load decrypts a stored wallet and reconstructs it. Any decryption failure
// surfaces as ErrAuthentication.
func (ks *Keystore) Load(name string, password []byte) (*Wallet, error) {
	kf, err := ks.readFile(ks.walletPath(name))
	if err != nil {
		return nil, err
	}

	state, err := Decrypt(kf.Blob, password)
	if err != nil {
		return nil, err
	}
	w, err := UnmarshalState(state)
	zeroBytes(state)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Info returns the public metadata of a stored wallet without decrypting it.
func (ks *Keystore) Info(name string) (WalletInfo, error) {
	kf, err := ks.readFile(ks.walletPath(name))
	if err != nil {
		return WalletInfo{}, err
	}
	return WalletInfo{
		Name:      name,
		Address:   kf.Address,
		PublicKey: kf.PublicKey,
		Mode:      DerivationMode(kf.Mode),
		CreatedAt: kf.CreatedAt,
	}, nil
}

// List returns the names of all wallet files in the keystore.
func (ks *Keystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.path)
	if err != nil {
		return nil, fmt.Errorf("read keystore dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if ext := filepath.Ext(name); ext == ".wallet" {
			names = append(names, name[:len(name)-len(ext)])
		}
	}
	return names, nil
}

// Delete removes a wallet file.
func (ks *Keystore) Delete(name string) error {
	path := ks.walletPath(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("wallet %q not found", name)
	}
	return os.Remove(path)
}

func (ks *Keystore) writeFile(path string, kf *keystoreFile) error {
	data, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal wallet: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write wallet: %w", err)
	}
	return nil
}

func (ks *Keystore) readFile(path string) (*keystoreFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wallet: %w", err)
	}
	var kf keystoreFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse wallet: %w", err)
	}
	if kf.Version != 1 {
		return nil, fmt.Errorf("unsupported wallet version: %d", kf.Version)
	}
	if kf.Blob == nil {
		return nil, fmt.Errorf("wallet file has no encrypted blob")
	}
	return &kf, nil
}
