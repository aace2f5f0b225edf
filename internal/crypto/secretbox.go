package crypto

import "fmt"

// SecretBox шифрует пароли коллекций одним ключом приложения
type SecretBox struct {
	key []byte
}

// NewSecretBox создаёт SecretBox с готовым 32-байтным ключом
func NewSecretBox(key []byte) (*SecretBox, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidKey, len(key))
	}
	return &SecretBox{key: append([]byte(nil), key...)}, nil
}

// NewSecretBoxFromPassphrase выводит ключ из секретной фразы и соли (Base64)
func NewSecretBoxFromPassphrase(passphrase, saltBase64 string) (*SecretBox, error) {
	key, err := DeriveKeyFromBase64Salt(passphrase, saltBase64)
	if err != nil {
		return nil, err
	}
	return NewSecretBox(key)
}

// Seal шифрует секрет
func (b *SecretBox) Seal(plaintext []byte) ([]byte, error) {
	return Encrypt(plaintext, b.key, keyContext)
}

// Open расшифровывает секрет, сохранённый Seal
func (b *SecretBox) Open(ciphertext []byte) ([]byte, error) {
	return Decrypt(ciphertext, b.key, keyContext)
}

// Fingerprint отпечаток ключа
func (b *SecretBox) Fingerprint() string {
	return Fingerprint(b.key)
}
