// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// KeySize is the length of the data key in bytes (AES-256).
const KeySize = 32

// aesFieldCipher is the AES-256-GCM implementation of [FieldCipher].
// Tokens are Base64 (standard encoding) of nonce (12 bytes) ‖ ciphertext.
type aesFieldCipher struct {
	keys KeyProvider
}

// NewFieldCipher constructs a [FieldCipher] that asks keys for the data key
// on every call.
func NewFieldCipher(keys KeyProvider) FieldCipher {
	return &aesFieldCipher{keys: keys}
}

// Encrypt implements [FieldCipher].
func (c *aesFieldCipher) Encrypt(value string) (string, error) {
	gcm, err := c.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(value), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [FieldCipher]. Bad base64, short blobs, a missing key
// and authentication failures all yield the passthrough variant.
func (c *aesFieldCipher) Decrypt(token string) DecryptResult {
	plaintext, err := c.open(token)
	if err != nil {
		return passedThrough(token)
	}

	return decrypted(plaintext)
}

func (c *aesFieldCipher) open(token string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := c.aead()
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return "", errCiphertextTooShort
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt data: %w", err)
	}

	return string(plaintext), nil
}

func (c *aesFieldCipher) aead() (cipher.AEAD, error) {
	key, err := c.keys.Key()
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrCryptoUnavailable, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrCryptoUnavailable, err)
	}

	return gcm, nil
}
