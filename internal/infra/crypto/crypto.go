// Package crypto seals key-value blobs with AES-256-GCM.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

const (
	// NonceSize is the size of the nonce for AES-GCM (12 bytes).
	NonceSize = 12
	// KeySize is the size of the AES-256 key (32 bytes).
	KeySize = 32
)

var (
	// ErrInvalidKey is returned when the encryption key is invalid.
	ErrInvalidKey = errors.New("invalid encryption key: must be 32 bytes (64 hex characters)")
	// ErrDecryptionFailed is returned when decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed: invalid ciphertext or key")
	// ErrCiphertextTooShort is returned when the ciphertext is too short.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// Encryptor seals values with AES-256-GCM.
//
// Sealing the plaintext most recently sealed or opened again returns the
// same ciphertext, so a git backend that rewrites an unchanged list reuses
// the existing blob instead of creating a new object on every write. Only
// that one value is remembered.
type Encryptor struct {
	gcm      cipher.AEAD
	last     []byte // nonce + ciphertext of the last value
	lastHash [sha256.Size]byte
	mu       sync.Mutex
}

// NewEncryptor creates an Encryptor from a hex-encoded 32-byte key.
// Surrounding whitespace is ignored so the key can come straight from an
// environment variable or a file.
func NewEncryptor(hexKey string) (*Encryptor, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil || len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return &Encryptor{gcm: gcm}, nil
}

// GenerateKey returns a random hex-encoded key suitable for NewEncryptor.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Encrypt seals plaintext.
// Returns: nonce (12 bytes) + ciphertext + auth tag
func (e *Encryptor) Encrypt(plaintext []byte) ([]byte, error) {
	hash := sha256.Sum256(plaintext)

	if cached, ok := e.cached(hash); ok {
		return cached, nil
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	sealed := e.gcm.Seal(nonce, nonce, plaintext, nil)

	e.remember(hash, sealed)
	return sealed, nil
}

// Decrypt opens a value produced by Encrypt.
// A successful decryption becomes the remembered value so re-saving loaded
// data is stable.
func (e *Encryptor) Decrypt(sealed []byte) ([]byte, error) {
	if len(sealed) < NonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce := sealed[:NonceSize]
	plaintext, err := e.gcm.Open(nil, nonce, sealed[NonceSize:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	e.remember(sha256.Sum256(plaintext), append([]byte(nil), sealed...))
	return plaintext, nil
}

func (e *Encryptor) cached(hash [sha256.Size]byte) ([]byte, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.last == nil || e.lastHash != hash {
		return nil, false
	}
	return e.last, true
}

func (e *Encryptor) remember(hash [sha256.Size]byte, sealed []byte) {
	e.mu.Lock()
	e.last, e.lastHash = sealed, hash
	e.mu.Unlock()
}
