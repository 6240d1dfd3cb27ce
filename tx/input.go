package tx

// InputType identifies the kind of a transaction input.
type InputType uint8

const (
	// InputTypeCoin spends an unspent coin output.
	InputTypeCoin InputType = iota
	// InputTypeMessage consumes a bridged message.
	InputTypeMessage
	// InputTypeContract grants a script access to contract state. It
	// carries a zeroed placeholder UTXO reference; the node fills in the
	// real one at execution.
	InputTypeContract
)

// Input is a tagged variant over coin, message, and contract inputs.
// Only the fields relevant to the Type are populated.
//
// Contract inputs must keep their leading positions for the lifetime of
// the builder: contract outputs reference them by index.
type Input struct {
	Type InputType `json:"type"`

	// Coin fields.
	UtxoID  UtxoID  `json:"utxo_id,omitzero"`
	Owner   Address `json:"owner,omitzero"`
	Amount  uint64  `json:"amount,omitempty"`
	AssetID AssetID `json:"asset_id,omitzero"`

	// Message fields.
	Sender    Address `json:"sender,omitzero"`
	Recipient Address `json:"recipient,omitzero"`
	Nonce     Nonce   `json:"nonce,omitzero"`
	Data      []byte  `json:"data,omitempty"`

	// Contract fields.
	ContractID ContractID `json:"contract_id,omitzero"`

	// WitnessIndex is the position of the signature covering this input
	// in the transaction's witness list. The node validates resource
	// inputs against the witness at this index.
	WitnessIndex uint16 `json:"witness_index"`
}

// NewCoinInput creates a coin input spending c, validated against the
// witness at witnessIndex.
func NewCoinInput(c Coin, witnessIndex uint16) Input {
	return Input{
		Type:         InputTypeCoin,
		UtxoID:       c.UtxoID,
		Owner:        c.Owner,
		Amount:       c.Amount,
		AssetID:      c.AssetID,
		WitnessIndex: witnessIndex,
	}
}

// NewMessageInput creates a message input consuming m, validated against
// the witness at witnessIndex.
func NewMessageInput(m Message, witnessIndex uint16) Input {
	return Input{
		Type:         InputTypeMessage,
		Sender:       m.Sender,
		Recipient:    m.Recipient,
		Nonce:        m.Nonce,
		Amount:       m.Amount,
		Data:         m.Data,
		WitnessIndex: witnessIndex,
	}
}

// NewContractInput creates a contract input with a zeroed placeholder
// UTXO reference.
func NewContractInput(id ContractID) Input {
	return Input{
		Type:       InputTypeContract,
		ContractID: id,
	}
}

// NewInputFromResource converts a spendable resource into the matching
// input variant.
func NewInputFromResource(r Resource, witnessIndex uint16) Input {
	switch v := r.(type) {
	case Coin:
		return NewCoinInput(v, witnessIndex)
	case *Coin:
		return NewCoinInput(*v, witnessIndex)
	case Message:
		return NewMessageInput(v, witnessIndex)
	case *Message:
		return NewMessageInput(*v, witnessIndex)
	default:
		panic("tx: unknown resource variant")
	}
}

// IsResource reports whether the input spends a coin or consumes a
// message (as opposed to a contract input).
func (in Input) IsResource() bool {
	return in.Type == InputTypeCoin || in.Type == InputTypeMessage
}

// ResourceID returns the identifier of the backing resource, or "" for
// contract inputs.
func (in Input) ResourceID() string {
	switch in.Type {
	case InputTypeCoin:
		return in.UtxoID.String()
	case InputTypeMessage:
		return in.Nonce.Hex()
	default:
		return ""
	}
}

// ResourceAssetID returns the asset carried by a resource input.
// Messages always carry the base asset.
func (in Input) ResourceAssetID() AssetID {
	if in.Type == InputTypeMessage {
		return BaseAssetID
	}
	return in.AssetID
}
