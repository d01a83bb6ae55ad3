// Package secret encrypts small values at rest using fernet tokens.
// It is used to keep the external quote provider's API token out of the
// database in plain text.
package secret

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Codec encrypts and decrypts strings with a single fernet key.
type Codec struct {
	key *fernet.Key
}

// NewCodec parses the base64 fernet key produced by fernet.Key.Encode.
func NewCodec(encodedKey string) (*Codec, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}
	return &Codec{key: key}, nil
}

// Encrypt seals the plaintext into a fernet token.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	return string(token), nil
}

// Decrypt opens a fernet token. Tokens do not expire; a zero TTL disables
// the timestamp check.
func (c *Codec) Decrypt(token string) (string, error) {
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{c.key})
	if plaintext == nil {
		return "", fmt.Errorf("failed to decrypt value: invalid token")
	}
	return string(plaintext), nil
}
