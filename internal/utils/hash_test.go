package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hex_KnownVector(t *testing.T) {
	// sha256("abc")
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		SHA256Hex([]byte("abc")))
}

func TestSHA256Hex_Deterministic(t *testing.T) {
	assert.Equal(t, SHA256Hex([]byte("x")), SHA256Hex([]byte("x")))
	assert.NotEqual(t, SHA256Hex([]byte("x")), SHA256Hex([]byte("y")))
}

func TestIsSHA256Hex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"lowercase digest", SHA256Hex([]byte("abc")), true},
		{"uppercase digest", strings.ToUpper(SHA256Hex([]byte("abc"))), true},
		{"too short", strings.Repeat("a", 63), false},
		{"too long", strings.Repeat("a", 65), false},
		{"non hex", strings.Repeat("g", 64), false},
		{"empty", "", false},
		{"plaintext", "admin123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSHA256Hex(tt.in))
		})
	}
}
