package tx

// ReceiptType identifies the kind of an execution receipt.
type ReceiptType uint8

const (
	// ReceiptTypeCall records a contract call frame.
	ReceiptTypeCall ReceiptType = iota
	// ReceiptTypeTransfer records a balance transfer to a contract.
	ReceiptTypeTransfer
	// ReceiptTypeMessageOut records a message emitted to the base layer.
	ReceiptTypeMessageOut
	// ReceiptTypeRevert records a script abort.
	ReceiptTypeRevert
	// ReceiptTypeScriptResult records the final script status and gas
	// consumed; it is the last receipt of every executed transaction.
	ReceiptTypeScriptResult
)

// Script result codes carried by a ScriptResult receipt.
const (
	ScriptResultSuccess uint64 = 0
	ScriptResultRevert  uint64 = 1
	ScriptResultPanic   uint64 = 2
)

// Receipt is one entry of the ordered sequence a node produces when it
// executes a transaction. Only the fields relevant to the Type are
// populated.
type Receipt struct {
	Type ReceiptType `json:"type"`

	// Call / Transfer fields.
	Contract ContractID `json:"contract,omitzero"`
	AssetID  AssetID    `json:"asset_id,omitzero"`

	// MessageOut fields.
	Sender    Address `json:"sender,omitzero"`
	Recipient Address `json:"recipient,omitzero"`
	Nonce     Nonce   `json:"nonce,omitzero"`
	Data      []byte  `json:"data,omitempty"`

	Amount uint64 `json:"amount,omitempty"`

	// ScriptResult / Revert fields.
	Result  uint64 `json:"result,omitempty"`
	GasUsed uint64 `json:"gas_used,omitempty"`
}

// ExtractMessageNonce scans receipts for the first base-layer message
// record and returns its nonce. The second return is false when no
// message was emitted.
func ExtractMessageNonce(receipts []Receipt) (Nonce, bool) {
	for _, r := range receipts {
		if r.Type == ReceiptTypeMessageOut {
			return r.Nonce, true
		}
	}
	return Nonce{}, false
}

// ScriptResult returns the ScriptResult receipt, or false when execution
// produced none (the transaction was never executed).
func ScriptResult(receipts []Receipt) (Receipt, bool) {
	for i := len(receipts) - 1; i >= 0; i-- {
		if receipts[i].Type == ReceiptTypeScriptResult {
			return receipts[i], true
		}
	}
	return Receipt{}, false
}
