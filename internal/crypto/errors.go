package crypto

import "errors"

var (
	// ErrCryptoUnavailable is returned when encryption was requested but no
	// working key exists.
	ErrCryptoUnavailable = errors.New("encryption unavailable")

	// ErrInvalidKeyLength is returned for a persisted key that is not 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	errCiphertextTooShort = errors.New("ciphertext too short")
)
