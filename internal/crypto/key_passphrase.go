// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/argon2"
)

// PassphraseKeyProvider derives the data key from a passphrase and salt with
// Argon2id. The derivation runs once; the result is cached.
type PassphraseKeyProvider struct {
	passphrase string
	salt       []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	once sync.Once
	key  []byte
}

// NewPassphraseKeyProvider constructs a provider with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPassphraseKeyProvider(passphrase string, salt []byte) *PassphraseKeyProvider {
	return &PassphraseKeyProvider{
		passphrase:   passphrase,
		salt:         salt,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// Key implements [KeyProvider].
func (p *PassphraseKeyProvider) Key() ([]byte, error) {
	if p.passphrase == "" || len(p.salt) == 0 {
		return nil, fmt.Errorf("%w: passphrase and salt are required", ErrCryptoUnavailable)
	}

	p.once.Do(func() {
		p.key = argon2.IDKey([]byte(p.passphrase), p.salt, p.argonTime, p.argonMemory, p.argonThreads, KeySize)
	})

	return p.key, nil
}
