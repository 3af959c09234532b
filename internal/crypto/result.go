package crypto

// DecryptResult is either a successfully decrypted value or the original
// input passed through unchanged.
type DecryptResult struct {
	// Value is the plaintext when Decrypted is true, otherwise the input.
	Value string

	// Decrypted is true only when authentication and decryption succeeded.
	Decrypted bool
}

// decrypted builds the successful variant.
func decrypted(value string) DecryptResult {
	return DecryptResult{Value: value, Decrypted: true}
}

// passedThrough builds the passthrough variant.
func passedThrough(original string) DecryptResult {
	return DecryptResult{Value: original}
}

// PassedThrough reports whether the input was returned unchanged.
func (r DecryptResult) PassedThrough() bool {
	return !r.Decrypted
}
