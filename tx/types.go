// Package tx implements transaction construction for the Ember chain:
// chain primitives, spendable resources, tagged input/output variants,
// the script transaction builder, and execution receipts.
//
// The builder is mutable and single-owner during assembly; Build consumes
// it into an immutable Transaction ready for submission.
package tx

import (
	"encoding/hex"
	"fmt"
)

// Fixed sizes of chain primitives, in bytes.
const (
	AddressLen  = 32
	AssetIDLen  = 32
	ContractLen = 32
	NonceLen    = 32
	TxIDLen     = 32
)

// Address identifies an account on the Ember chain (SHA-256 of the
// compressed secp256k1 public key).
type Address [AddressLen]byte

// AssetID identifies an asset. The zero value is the base asset.
type AssetID [AssetIDLen]byte

// ContractID identifies a deployed contract.
type ContractID [ContractLen]byte

// Nonce identifies a bridged message. It is assigned by the bridge on the
// base layer and is unique per message.
type Nonce [NonceLen]byte

// TxID is the transaction hash, computed over the chain id and the
// witness-free transaction serialization.
type TxID [TxIDLen]byte

// BaseAssetID is the network's native fee-paying asset.
var BaseAssetID = AssetID{}

// UtxoID references a specific output of a prior transaction.
type UtxoID struct {
	TxID        TxID   `json:"txid"`
	OutputIndex uint16 `json:"output_index"`
}

// String returns the UTXO reference as "txid:index".
func (u UtxoID) String() string {
	return fmt.Sprintf("%s:%d", u.TxID.Hex(), u.OutputIndex)
}

func (a Address) Hex() string    { return hex.EncodeToString(a[:]) }
func (a AssetID) Hex() string    { return hex.EncodeToString(a[:]) }
func (c ContractID) Hex() string { return hex.EncodeToString(c[:]) }
func (n Nonce) Hex() string      { return hex.EncodeToString(n[:]) }
func (t TxID) Hex() string       { return hex.EncodeToString(t[:]) }

func (a Address) String() string    { return a.Hex() }
func (c ContractID) String() string { return c.Hex() }
func (t TxID) String() string       { return t.Hex() }

// IsZero reports whether the asset is the base asset.
func (a AssetID) IsZero() bool { return a == BaseAssetID }

// decode32 parses a 64-character hex string into a 32-byte array.
// A leading "0x" prefix is accepted.
func decode32(s string) ([32]byte, error) {
	var out [32]byte
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	if len(b) != 32 {
		return out, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidHex, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// AddressFromHex parses a hex-encoded address.
func AddressFromHex(s string) (Address, error) {
	b, err := decode32(s)
	return Address(b), err
}

// AssetIDFromHex parses a hex-encoded asset id.
func AssetIDFromHex(s string) (AssetID, error) {
	b, err := decode32(s)
	return AssetID(b), err
}

// ContractIDFromHex parses a hex-encoded contract id.
func ContractIDFromHex(s string) (ContractID, error) {
	b, err := decode32(s)
	return ContractID(b), err
}

// NonceFromHex parses a hex-encoded message nonce.
func NonceFromHex(s string) (Nonce, error) {
	b, err := decode32(s)
	return Nonce(b), err
}

// TxIDFromHex parses a hex-encoded transaction id.
func TxIDFromHex(s string) (TxID, error) {
	b, err := decode32(s)
	return TxID(b), err
}
