// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileKeyProvider keeps the data key as raw bytes in a file.
//
// The key is loaded lazily on the first call to Key and cached for the life
// of the provider. When the file does not exist a new random key is written
// there; anything encrypted under a previous key then decrypts as
// passthrough. Anyone who can read the file can decrypt.
type FileKeyProvider struct {
	path string

	mu  sync.Mutex
	key []byte
}

// NewFileKeyProvider returns a provider for the key stored at path.
func NewFileKeyProvider(path string) *FileKeyProvider {
	return &FileKeyProvider{path: path}
}

// Key implements [KeyProvider]. A failed load is not cached, so a later call
// can succeed once the file problem is fixed.
func (p *FileKeyProvider) Key() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key != nil {
		return p.key, nil
	}

	key, err := os.ReadFile(p.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		key, err = p.generate()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCryptoUnavailable, err)
		}
	case err != nil:
		return nil, fmt.Errorf("%w: read key file: %w", ErrCryptoUnavailable, err)
	}

	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: %w: got %d bytes", ErrCryptoUnavailable, ErrInvalidKeyLength, len(key))
	}

	p.key = key
	return p.key, nil
}

// Path returns the location of the key file.
func (p *FileKeyProvider) Path() string {
	return p.path
}

func (p *FileKeyProvider) generate() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create key directory: %w", err)
		}
	}

	// O_EXCL so a concurrently created key is never overwritten.
	f, err := os.OpenFile(p.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create key file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(key); err != nil {
		return nil, fmt.Errorf("write key file: %w", err)
	}

	return key, nil
}
