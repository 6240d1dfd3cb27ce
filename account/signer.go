package account

import (
	"crypto/sha256"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"

	"github.com/emberchain/libember-go/tx"
)

// AddressFromPublicKey derives an Ember address: SHA-256 of the
// compressed secp256k1 public key.
func AddressFromPublicKey(pub *ec.PublicKey) tx.Address {
	return tx.Address(sha256.Sum256(pub.Compressed()))
}

// PrivateKeySigner signs transaction digests with an in-memory
// secp256k1 private key. It implements tx.Signer.
type PrivateKeySigner struct {
	priv *ec.PrivateKey
	addr tx.Address
}

// NewPrivateKeySigner wraps a private key into a signer.
func NewPrivateKeySigner(priv *ec.PrivateKey) (*PrivateKeySigner, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: private key", tx.ErrNilParam)
	}
	return &PrivateKeySigner{
		priv: priv,
		addr: AddressFromPublicKey(priv.PubKey()),
	}, nil
}

// Address implements tx.Signer.
func (s *PrivateKeySigner) Address() tx.Address { return s.addr }

// PublicKey returns the signer's public key.
func (s *PrivateKeySigner) PublicKey() *ec.PublicKey { return s.priv.PubKey() }

// Sign implements tx.Signer: a DER-encoded ECDSA signature over the
// 32-byte transaction digest.
func (s *PrivateKeySigner) Sign(digest []byte) ([]byte, error) {
	sig, err := s.priv.Sign(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tx.ErrSigningFailed, err)
	}
	return sig.Serialize(), nil
}
