package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassphraseKeyProvider_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1, err := NewPassphraseKeyProvider("correct horse battery staple", salt).Key()
	require.NoError(t, err)
	k2, err := NewPassphraseKeyProvider("correct horse battery staple", salt).Key()
	require.NoError(t, err)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
}

func TestPassphraseKeyProvider_DifferentSalt(t *testing.T) {
	k1, err := NewPassphraseKeyProvider("pass", bytes.Repeat([]byte{0x01}, 16)).Key()
	require.NoError(t, err)
	k2, err := NewPassphraseKeyProvider("pass", bytes.Repeat([]byte{0x02}, 16)).Key()
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestPassphraseKeyProvider_MissingInput(t *testing.T) {
	_, err := NewPassphraseKeyProvider("", []byte("saltsalt")).Key()
	assert.ErrorIs(t, err, ErrCryptoUnavailable)

	_, err = NewPassphraseKeyProvider("pass", nil).Key()
	assert.ErrorIs(t, err, ErrCryptoUnavailable)
}
