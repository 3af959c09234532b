package crypto

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKeyProvider_GeneratesMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "secret.key")
	p := NewFileKeyProvider(path)

	key, err := p.Key()
	require.NoError(t, err)
	assert.Len(t, key, KeySize)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, key, onDisk)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileKeyProvider_LoadsExistingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")
	want := bytes.Repeat([]byte{0x42}, KeySize)
	require.NoError(t, os.WriteFile(path, want, 0o600))

	key, err := NewFileKeyProvider(path).Key()
	require.NoError(t, err)
	assert.Equal(t, want, key)
}

func TestFileKeyProvider_CachesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")
	p := NewFileKeyProvider(path)

	first, err := p.Key()
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	second, err := p.Key()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileKeyProvider_WrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")
	require.NoError(t, os.WriteFile(path, []byte("too short"), 0o600))

	_, err := NewFileKeyProvider(path).Key()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCryptoUnavailable)
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestFileKeyProvider_UnreadablePath(t *testing.T) {
	// a directory where the key file should be
	dir := t.TempDir()

	_, err := NewFileKeyProvider(dir).Key()
	assert.ErrorIs(t, err, ErrCryptoUnavailable)
}

func TestFileKeyProvider_RoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.key")

	token, err := NewFieldCipher(NewFileKeyProvider(path)).Encrypt("Asthma")
	require.NoError(t, err)

	res := NewFieldCipher(NewFileKeyProvider(path)).Decrypt(token)
	assert.True(t, res.Decrypted)
	assert.Equal(t, "Asthma", res.Value)
}
