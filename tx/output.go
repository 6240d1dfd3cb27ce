package tx

// OutputType identifies the kind of a transaction output.
type OutputType uint8

const (
	// OutputTypeCoin pays an amount of an asset to a recipient.
	OutputTypeCoin OutputType = iota
	// OutputTypeChange returns unspent input value of one asset to its
	// owner. The amount is computed by the node; the client only states
	// who owns the change and in which asset.
	OutputTypeChange
	// OutputTypeContract commits the post-execution state of the
	// contract referenced by InputIndex. Balance root and state root are
	// zeroed placeholders filled in by the node.
	OutputTypeContract
	// OutputTypeMessage sends an amount of the base asset to an address
	// on the base layer via the bridge.
	OutputTypeMessage
)

// Output is a tagged variant over coin, change, contract, and message
// outputs. Only the fields relevant to the Type are populated.
type Output struct {
	Type OutputType `json:"type"`

	To      Address `json:"to,omitzero"`
	Amount  uint64  `json:"amount,omitempty"`
	AssetID AssetID `json:"asset_id,omitzero"`

	// InputIndex references the contract input this output commits.
	// Valid only for contract outputs, and only while the referenced
	// input keeps its position.
	InputIndex uint16 `json:"input_index,omitempty"`
}

// NewCoinOutput pays amount of asset to the recipient.
func NewCoinOutput(to Address, amount uint64, asset AssetID) Output {
	return Output{Type: OutputTypeCoin, To: to, Amount: amount, AssetID: asset}
}

// NewChangeOutput returns unspent value of asset to owner. The node
// computes the amount.
func NewChangeOutput(owner Address, asset AssetID) Output {
	return Output{Type: OutputTypeChange, To: owner, AssetID: asset}
}

// NewContractOutput commits the contract input at inputIndex.
func NewContractOutput(inputIndex uint16) Output {
	return Output{Type: OutputTypeContract, InputIndex: inputIndex}
}

// NewMessageOutput sends amount of the base asset to an address on the
// base layer.
func NewMessageOutput(to Address, amount uint64) Output {
	return Output{Type: OutputTypeMessage, To: to, Amount: amount}
}
