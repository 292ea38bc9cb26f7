package wallet

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/pbkdf2"
)

// Encryption constants.
const (
	// SaltSize is the length of the random PBKDF2 salt.
	SaltSize = 16

	// DefaultKDFIterations is the PBKDF2-HMAC-SHA256 iteration count for
	// newly encrypted blobs. The password KDF is deliberately far more
	// expensive than the fixed-cost BIP-39 stretch: it is the only defense
	// against offline brute-force of a weak user password. The count
	// travels inside the token, so old blobs stay decryptable when this
	// default changes.
	DefaultKDFIterations = 390_000

	// maxKDFIterations bounds the iteration count accepted from a stored
	// token, so a forged header cannot pin the CPU indefinitely.
	maxKDFIterations = 10_000_000

	tokenVersion = 0x01

	// Token layout: version(1) | iterations(4, BE) | nonce(24) | sealed.
	tokenHeaderSize = 1 + 4 + chacha20poly1305.NonceSizeX
)

// ErrAuthentication is returned for every decryption failure: wrong
// password, corrupted ciphertext, or tampering. The cause is deliberately
// not distinguishable by the caller.
var ErrAuthentication = errors.New("wallet authentication failed")

// Blob is the at-rest representation of encrypted wallet state. Both fields
// JSON-marshal to base64, safe for text transport. The password itself is
// never stored.
type Blob struct {
	Data []byte `json:"data"`
	Salt []byte `json:"salt"`
}

// DeriveKey stretches a password into a 32-byte encryption key with
// PBKDF2-HMAC-SHA256. Blocking and single-threaded; callers needing bounded
// latency run it off their hot path.
func DeriveKey(password, salt []byte, iterations int) []byte {
	return pbkdf2.Key(password, salt, iterations, chacha20poly1305.KeySize, sha256.New)
}

// Encrypt seals serialized wallet state under a password with
// PBKDF2-HMAC-SHA256 + XChaCha20-Poly1305. A fresh salt and nonce are drawn
// per call, so encrypting the same input twice yields different blobs.
func Encrypt(state, password []byte) (*Blob, error) {
	return EncryptWithIterations(state, password, DefaultKDFIterations)
}

// EncryptWithIterations is Encrypt with an explicit KDF cost, used by tests
// and by configs that tune the iteration count.
func EncryptWithIterations(state, password []byte, iterations int) (*Blob, error) {
	if iterations <= 0 || iterations > maxKDFIterations {
		return nil, fmt.Errorf("kdf iterations out of range: %d", iterations)
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := DeriveKey(password, salt, iterations)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Token: version | iterations | nonce | ciphertext+tag. The version and
	// iteration count are bound to the ciphertext as additional data, so a
	// downgraded header fails authentication.
	header := make([]byte, 0, tokenHeaderSize)
	header = append(header, tokenVersion)
	header = binary.BigEndian.AppendUint32(header, uint32(iterations))

	sealed := aead.Seal(nil, nonce, state, header)

	token := make([]byte, 0, tokenHeaderSize+len(sealed))
	token = append(token, header...)
	token = append(token, nonce...)
	token = append(token, sealed...)

	return &Blob{Data: token, Salt: salt}, nil
}

// Decrypt opens a blob with the given password. The integrity tag is
// verified before any plaintext is released. Every failure is reported as
// ErrAuthentication with no finer-grained cause.
func Decrypt(blob *Blob, password []byte) ([]byte, error) {
	if blob == nil || len(blob.Salt) != SaltSize {
		return nil, ErrAuthentication
	}
	token := blob.Data
	if len(token) < tokenHeaderSize+chacha20poly1305.Overhead {
		return nil, ErrAuthentication
	}
	if token[0] != tokenVersion {
		return nil, ErrAuthentication
	}

	iterations := int(binary.BigEndian.Uint32(token[1:5]))
	if iterations <= 0 || iterations > maxKDFIterations {
		return nil, ErrAuthentication
	}

	header := token[:5]
	nonce := token[5:tokenHeaderSize]
	sealed := token[tokenHeaderSize:]

	key := DeriveKey(password, blob.Salt, iterations)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, ErrAuthentication
	}

	state, err := aead.Open(nil, nonce, sealed, header)
	if err != nil {
		return nil, ErrAuthentication
	}
	return state, nil
}
