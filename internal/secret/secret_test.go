package secret

import (
	"testing"

	"github.com/fernet/fernet-go"
)

func generateKey(t *testing.T) string {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}
	return key.Encode()
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := NewCodec(generateKey(t))
	if err != nil {
		t.Fatalf("NewCodec returned unexpected error: %v", err)
	}

	token, err := codec.Encrypt("brapi-api-token-123")
	if err != nil {
		t.Fatalf("Encrypt returned unexpected error: %v", err)
	}

	if token == "brapi-api-token-123" {
		t.Error("Expected ciphertext to differ from plaintext")
	}

	plaintext, err := codec.Decrypt(token)
	if err != nil {
		t.Fatalf("Decrypt returned unexpected error: %v", err)
	}
	if plaintext != "brapi-api-token-123" {
		t.Errorf("Expected round-trip to return original value, got %q", plaintext)
	}
}

func TestCodec_InvalidKey(t *testing.T) {
	if _, err := NewCodec("not-a-key"); err == nil {
		t.Error("Expected error for malformed key")
	}
}

func TestCodec_DecryptWithWrongKey(t *testing.T) {
	first, err := NewCodec(generateKey(t))
	if err != nil {
		t.Fatalf("NewCodec returned unexpected error: %v", err)
	}
	second, err := NewCodec(generateKey(t))
	if err != nil {
		t.Fatalf("NewCodec returned unexpected error: %v", err)
	}

	token, err := first.Encrypt("value")
	if err != nil {
		t.Fatalf("Encrypt returned unexpected error: %v", err)
	}

	if _, err := second.Decrypt(token); err == nil {
		t.Error("Expected decryption with the wrong key to fail")
	}
}
