package tx

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/chainhash"
)

// transactionVersion is the serialization version understood by current
// nodes.
const transactionVersion uint32 = 1

// Signer produces a witness signature over a transaction digest.
// Implementations live outside this package (see the account package);
// view-only accounts have no Signer.
type Signer interface {
	// Address returns the account address the signature authenticates.
	Address() Address

	// Sign signs the 32-byte transaction digest.
	Sign(digest []byte) ([]byte, error)
}

// ScriptBuilder accumulates inputs, outputs, policies, and signers for a
// script transaction. It is mutable and single-owner during assembly;
// Build consumes the current state into an immutable Transaction.
type ScriptBuilder struct {
	Script     []byte
	ScriptData []byte
	Inputs     []Input
	Outputs    []Output
	Policies   TxPolicies

	signers []Signer
}

// NewScriptBuilder creates an empty builder with normalized policies.
func NewScriptBuilder(policies TxPolicies) *ScriptBuilder {
	return &ScriptBuilder{Policies: policies.Normalize()}
}

// PrepareTransfer creates a builder for a plain value transfer.
func PrepareTransfer(inputs []Input, outputs []Output, policies TxPolicies) *ScriptBuilder {
	b := NewScriptBuilder(policies)
	b.Inputs = append(b.Inputs, inputs...)
	b.Outputs = append(b.Outputs, outputs...)
	return b
}

// PrepareContractTransfer creates a builder whose script forwards balance
// of asset to the contract referenced by the leading contract input.
func PrepareContractTransfer(to ContractID, balance uint64, asset AssetID, inputs []Input, outputs []Output, policies TxPolicies) *ScriptBuilder {
	b := NewScriptBuilder(policies)
	b.Script = contractTransferScript()
	b.ScriptData = contractTransferScriptData(to, balance, asset)
	b.Inputs = append(b.Inputs, inputs...)
	b.Outputs = append(b.Outputs, outputs...)
	return b
}

// PrepareMessageToOutput creates a builder for a base-layer withdrawal:
// a message output carrying amount of the base asset to an address on
// the base layer, plus a change output for the base asset.
func PrepareMessageToOutput(to Address, amount uint64, changeOwner Address, inputs []Input, policies TxPolicies) *ScriptBuilder {
	b := NewScriptBuilder(policies)
	b.Script = withdrawScript()
	b.Inputs = append(b.Inputs, inputs...)
	b.Outputs = append(b.Outputs,
		NewMessageOutput(to, amount),
		NewChangeOutput(changeOwner, BaseAssetID),
	)
	return b
}

// AddInput appends one input.
func (b *ScriptBuilder) AddInput(in Input) { b.Inputs = append(b.Inputs, in) }

// AddOutput appends one output.
func (b *ScriptBuilder) AddOutput(out Output) { b.Outputs = append(b.Outputs, out) }

// AddSigner registers a signer whose witness will be resolved at Build
// time. Registering the same address twice is a no-op; the returned
// witness index is stable across repeated calls, so inputs added later
// for an already-registered signer need no new witness.
func (b *ScriptBuilder) AddSigner(s Signer) uint16 {
	addr := s.Address()
	for i, existing := range b.signers {
		if existing.Address() == addr {
			return uint16(i)
		}
	}
	b.signers = append(b.signers, s)
	return uint16(len(b.signers) - 1)
}

// SignerCount returns the number of registered signers.
func (b *ScriptBuilder) SignerCount() int { return len(b.signers) }

// CommittedAmount sums the value of resource inputs carrying asset.
func (b *ScriptBuilder) CommittedAmount(asset AssetID) uint64 {
	var total uint64
	for _, in := range b.Inputs {
		if in.IsResource() && in.ResourceAssetID() == asset {
			total += in.Amount
		}
	}
	return total
}

// UsedResourceIDs returns the identifiers of all resources already spent
// by the builder, for use as a selection exclusion set.
func (b *ScriptBuilder) UsedResourceIDs() []string {
	ids := make([]string, 0, len(b.Inputs))
	for _, in := range b.Inputs {
		if in.IsResource() {
			ids = append(ids, in.ResourceID())
		}
	}
	return ids
}

// Bytes returns the canonical draft serialization with witnesses zeroed,
// suitable for node-side fee estimation. Witness slots are present (the
// estimator prices their size) but their content is not.
func (b *ScriptBuilder) Bytes() []byte {
	return b.serialize(len(b.signers), nil)
}

// Build finalizes the builder into an immutable Transaction for the
// given chain id: computes the witness-free digest, collects one witness
// per registered signer, and enforces the witness limit.
func (b *ScriptBuilder) Build(chainID uint64) (*Transaction, error) {
	if len(b.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	if len(b.Outputs) == 0 {
		return nil, ErrNoOutputs
	}

	id := b.digest(chainID)

	witnesses := make([][]byte, 0, len(b.signers))
	var witnessBytes uint64
	for i, s := range b.signers {
		sig, err := s.Sign(id[:])
		if err != nil {
			return nil, fmt.Errorf("%w: signer %d (%s): %w", ErrSigningFailed, i, s.Address(), err)
		}
		witnessBytes += uint64(len(sig))
		witnesses = append(witnesses, sig)
	}
	if witnessBytes > b.Policies.WitnessLimit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrWitnessLimitExceeded, witnessBytes, b.Policies.WitnessLimit)
	}

	return &Transaction{
		id:        id,
		raw:       b.serialize(len(witnesses), witnesses),
		Inputs:    append([]Input(nil), b.Inputs...),
		Outputs:   append([]Output(nil), b.Outputs...),
		Witnesses: witnesses,
		Policies:  b.Policies,
	}, nil
}

// digest computes the transaction id: double-SHA256 over the chain id
// and the witness-free serialization. Witness content is excluded so
// signatures can cover the id itself.
func (b *ScriptBuilder) digest(chainID uint64) TxID {
	var prefix [8]byte
	binary.LittleEndian.PutUint64(prefix[:], chainID)
	preimage := append(prefix[:], b.serialize(len(b.signers), nil)...)
	return TxID(chainhash.DoubleHashH(preimage))
}

// serialize produces the canonical little-endian encoding. witnessCount
// slots are always encoded; witness data only when provided.
func (b *ScriptBuilder) serialize(witnessCount int, witnesses [][]byte) []byte {
	var buf bytes.Buffer
	w := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	w(transactionVersion)
	w(b.Policies.GasPriceCeiling)
	w(b.Policies.Maturity)
	w(b.Policies.Expiration)
	w(b.Policies.WitnessLimit)

	writeBytes(&buf, b.Script)
	writeBytes(&buf, b.ScriptData)

	w(uint32(len(b.Inputs)))
	for _, in := range b.Inputs {
		w(uint8(in.Type))
		switch in.Type {
		case InputTypeCoin:
			buf.Write(in.UtxoID.TxID[:])
			w(in.UtxoID.OutputIndex)
			buf.Write(in.Owner[:])
			w(in.Amount)
			buf.Write(in.AssetID[:])
			w(in.WitnessIndex)
		case InputTypeMessage:
			buf.Write(in.Sender[:])
			buf.Write(in.Recipient[:])
			buf.Write(in.Nonce[:])
			w(in.Amount)
			writeBytes(&buf, in.Data)
			w(in.WitnessIndex)
		case InputTypeContract:
			// Zeroed placeholder reference; the node fills it in.
			buf.Write(in.UtxoID.TxID[:])
			w(in.UtxoID.OutputIndex)
			buf.Write(in.ContractID[:])
		}
	}

	w(uint32(len(b.Outputs)))
	for _, out := range b.Outputs {
		w(uint8(out.Type))
		switch out.Type {
		case OutputTypeCoin, OutputTypeMessage:
			buf.Write(out.To[:])
			w(out.Amount)
			buf.Write(out.AssetID[:])
		case OutputTypeChange:
			buf.Write(out.To[:])
			buf.Write(out.AssetID[:])
		case OutputTypeContract:
			w(out.InputIndex)
		}
	}

	w(uint32(witnessCount))
	for _, wit := range witnesses {
		writeBytes(&buf, wit)
	}

	return buf.Bytes()
}

// writeBytes encodes a length-prefixed byte slice.
func writeBytes(buf *bytes.Buffer, b []byte) {
	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(b)))
	buf.Write(l[:])
	buf.Write(b)
}

// Transaction is a finalized, witnessed transaction ready for submission.
type Transaction struct {
	id  TxID
	raw []byte

	Inputs    []Input
	Outputs   []Output
	Witnesses [][]byte
	Policies  TxPolicies
}

// ID returns the transaction id computed at Build time.
func (t *Transaction) ID() TxID { return t.id }

// Bytes returns the full serialization including witness data.
func (t *Transaction) Bytes() []byte { return t.raw }

// Script opcodes understood by Ember nodes. The canned scripts below are
// fixed programs; parameters travel in ScriptData.
const (
	opTransferToContract byte = 0x01
	opSendMessageOut     byte = 0x02
	opReturn             byte = 0xff
)

func contractTransferScript() []byte {
	return []byte{opTransferToContract, opReturn}
}

func withdrawScript() []byte {
	return []byte{opSendMessageOut, opReturn}
}

// contractTransferScriptData packs (contract, amount, asset) for the
// transfer opcode.
func contractTransferScriptData(to ContractID, balance uint64, asset AssetID) []byte {
	data := make([]byte, 0, ContractLen+8+AssetIDLen)
	data = append(data, to[:]...)
	data = binary.LittleEndian.AppendUint64(data, balance)
	data = append(data, asset[:]...)
	return data
}
