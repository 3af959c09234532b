package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyProvider supplies the 256-bit data key used to encrypt sensitive
// fields. Implementations decide where the key lives; callers never cache it.
type KeyProvider interface {
	// Key returns the 32 byte data key, or an error wrapping
	// ErrCryptoUnavailable when no usable key can be obtained.
	Key() ([]byte, error)
}

// FieldCipher encrypts and decrypts single text fields.
type FieldCipher interface {
	// Encrypt returns an authenticated, base64 encoded token for value.
	// It fails with an error wrapping ErrCryptoUnavailable when no key is
	// available; the caller decides whether to store plaintext instead.
	Encrypt(value string) (string, error)

	// Decrypt never fails. Input that is not a valid token for the current
	// key comes back unchanged as a passthrough result.
	Decrypt(token string) DecryptResult
}
