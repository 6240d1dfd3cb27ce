package keystore

import (
	"fmt"

	bip32 "github.com/bsv-blockchain/go-sdk/compat/bip32"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	chaincfg "github.com/bsv-blockchain/go-sdk/transaction/chaincfg"
)

const (
	// BIP44 path constants. Path: m/44'/407'/{account}'/0/0.
	purposeBIP44  = 44
	coinTypeEmber = 407

	// BIP32 hardened offset.
	hardened = 0x80000000
)

// DeriveAccountKey derives the signing key for account index from a
// BIP39 seed, at path m/44'/407'/{index}'/0/0.
func DeriveAccountKey(seed []byte, index uint32) (*ec.PrivateKey, error) {
	if len(seed) == 0 {
		return nil, ErrInvalidSeed
	}

	masterKey, err := bip32.NewMaster(seed, &chaincfg.MainNet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}

	steps := []uint32{
		purposeBIP44 + hardened,
		coinTypeEmber + hardened,
		index + hardened,
		0,
		0,
	}
	key := masterKey
	for _, step := range steps {
		if key, err = key.Child(step); err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrDerivationFailed, step, err)
		}
	}

	privKey, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to extract EC private key: %w", ErrDerivationFailed, err)
	}
	return privKey, nil
}
