package keystore

import "errors"

var (
	// ErrInvalidMnemonic indicates the mnemonic fails BIP39 validation.
	ErrInvalidMnemonic = errors.New("keystore: invalid BIP39 mnemonic")

	// ErrInvalidEntropy indicates entropy bits is not 128 or 256.
	ErrInvalidEntropy = errors.New("keystore: entropy bits must be 128 or 256")

	// ErrInvalidSeed indicates the seed is empty or invalid.
	ErrInvalidSeed = errors.New("keystore: invalid seed")

	// ErrDecryptionFailed indicates a wrong password or a damaged
	// envelope.
	ErrDecryptionFailed = errors.New("keystore: seed envelope failed to open (wrong password or corrupted data)")

	// ErrUnsupportedEnvelope indicates the sealed envelope's magic or
	// version is not one this build understands.
	ErrUnsupportedEnvelope = errors.New("keystore: unsupported seed envelope")

	// ErrDerivationFailed indicates BIP32 key derivation failed.
	ErrDerivationFailed = errors.New("keystore: key derivation failed")

	// ErrAccountNotFound indicates the named account does not exist in
	// the store.
	ErrAccountNotFound = errors.New("keystore: account not found")

	// ErrAccountExists indicates the account name is already taken.
	ErrAccountExists = errors.New("keystore: account already exists")
)
