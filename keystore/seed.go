// Package keystore manages at-rest key material for Ember accounts:
// BIP39 mnemonics, password-sealed seed envelopes, BIP32 account key
// derivation, and a bbolt-backed store of sealed seeds.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/compat/bip39"
	"golang.org/x/crypto/argon2"
)

// Mnemonic entropy sizes.
const (
	Mnemonic12Words = 128
	Mnemonic24Words = 256
)

// Sealed seed envelope, version 1:
//
//	magic "EMS" (3B) || version (1B) || salt (16B) || nonce (12B) || ciphertext
//
// The AEAD key is derived from the password with Argon2id over the salt.
// The whole header (magic through nonce) is authenticated as AEAD
// additional data, so an envelope whose header was edited or truncated
// fails to open instead of yielding a garbled seed. The version byte
// selects the KDF parameters; bumping them means a new version, not a
// silent change.
const (
	envelopeMagic = "EMS"
	envelopeV1    = 0x01

	envelopeSaltLen   = 16
	envelopeNonceLen  = 12
	envelopeHeaderLen = len(envelopeMagic) + 1 + envelopeSaltLen + envelopeNonceLen
)

// Argon2id parameters for envelope version 1.
const (
	sealTime    = 3
	sealMemory  = 64 * 1024 // KiB
	sealThreads = 4
	sealKeyLen  = 32
)

// GenerateMnemonic creates a new BIP39 mnemonic with the given entropy
// bits: Mnemonic12Words (128) or Mnemonic24Words (256).
func GenerateMnemonic(entropyBits int) (string, error) {
	switch entropyBits {
	case Mnemonic12Words, Mnemonic24Words:
	default:
		return "", fmt.Errorf("%w: %d bits", ErrInvalidEntropy, entropyBits)
	}

	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("keystore: generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("keystore: encode mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic string is valid BIP39.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// SeedFromMnemonic derives the 64-byte BIP39 seed from mnemonic and
// optional passphrase. An empty passphrase still participates in
// derivation.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	return seed, nil
}

// sealCipher derives the envelope AEAD for a password and salt.
func sealCipher(password string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(password), salt, sealTime, sealMemory, sealThreads, sealKeyLen)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("keystore: seal cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// SealSeed wraps a seed in a version-1 envelope encrypted under
// password. The result is what the Store persists.
func SealSeed(seed []byte, password string) ([]byte, error) {
	if len(seed) == 0 {
		return nil, ErrInvalidSeed
	}

	header := make([]byte, 0, envelopeHeaderLen)
	header = append(header, envelopeMagic...)
	header = append(header, envelopeV1)

	salt := make([]byte, envelopeSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("keystore: generate salt: %w", err)
	}
	header = append(header, salt...)

	nonce := make([]byte, envelopeNonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("keystore: generate nonce: %w", err)
	}
	header = append(header, nonce...)

	gcm, err := sealCipher(password, salt)
	if err != nil {
		return nil, err
	}

	envelope := append([]byte(nil), header...)
	return gcm.Seal(envelope, nonce, seed, header), nil
}

// OpenSeed unwraps a sealed envelope with password. A wrong password,
// edited header, or damaged ciphertext fails with ErrDecryptionFailed;
// an envelope this version does not understand fails with
// ErrUnsupportedEnvelope.
func OpenSeed(envelope []byte, password string) ([]byte, error) {
	if len(envelope) <= envelopeHeaderLen {
		return nil, fmt.Errorf("%w: envelope too short", ErrDecryptionFailed)
	}
	if string(envelope[:len(envelopeMagic)]) != envelopeMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrUnsupportedEnvelope)
	}
	if version := envelope[len(envelopeMagic)]; version != envelopeV1 {
		return nil, fmt.Errorf("%w: version %#x", ErrUnsupportedEnvelope, version)
	}

	header := envelope[:envelopeHeaderLen]
	salt := header[len(envelopeMagic)+1 : len(envelopeMagic)+1+envelopeSaltLen]
	nonce := header[envelopeHeaderLen-envelopeNonceLen:]

	gcm, err := sealCipher(password, salt)
	if err != nil {
		return nil, err
	}

	seed, err := gcm.Open(nil, nonce, envelope[envelopeHeaderLen:], header)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return seed, nil
}
