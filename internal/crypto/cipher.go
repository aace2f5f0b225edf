// Package crypto шифрует пароли коллекций ключом приложения.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// NonceSize - размер nonce для AES-GCM (12 bytes стандартный размер)
	NonceSize = 12
	// KeySize длина ключа AES-256
	KeySize = 32

	// sealVersion первый байт шифртекста, формат: version + nonce + ciphertext + tag
	sealVersion byte = 1
)

var (
	// ErrInvalidKey ключ не 32 байта
	ErrInvalidKey = errors.New("crypto: encryption key must be 32 bytes")
	// ErrDecrypt шифртекст повреждён или зашифрован другим ключом
	ErrDecrypt = errors.New("crypto: authentication failed or corrupted data")
)

// Encrypt шифрует данные с использованием AES-256-GCM.
// additionalData привязывает шифртекст к контексту и не шифруется.
func Encrypt(plaintext, key, additionalData []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("plaintext cannot be empty")
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// GCM автоматически добавляет authentication tag в конец
	ciphertext := aesGCM.Seal(nil, nonce, plaintext, additionalData)

	result := make([]byte, 0, 1+len(nonce)+len(ciphertext))
	result = append(result, sealVersion)
	result = append(result, nonce...)
	result = append(result, ciphertext...)
	return result, nil
}

// Decrypt дешифрует данные, зашифрованные с помощью Encrypt
func Decrypt(encrypted, key, additionalData []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(encrypted) < 1+NonceSize+aesGCM.Overhead() {
		return nil, fmt.Errorf("%w: data too short", ErrDecrypt)
	}
	if encrypted[0] != sealVersion {
		return nil, fmt.Errorf("%w: unknown format version %d", ErrDecrypt, encrypted[0])
	}

	nonce := encrypted[1 : 1+NonceSize]
	ciphertext := encrypted[1+NonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidKey, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
