package hxui

import "errors"

// Sentinel errors for registry operations.
var (
	ErrNotFound         = errors.New("hxui: not found")
	ErrSchemaRequired   = errors.New("hxui: component has several schemas, name one")
	ErrDecryptFailed    = errors.New("hxui: bundle decryption failed")
	ErrSignatureInvalid = errors.New("hxui: bundle signature verification failed")
	ErrInvalidFormat    = errors.New("hxui: invalid bundle format")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIntegrityError checks if err is a decryption or signature error.
func IsIntegrityError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}
