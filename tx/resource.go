package tx

// Resource is a spendable item owned by an account: either a Coin (an
// unspent output) or a Message (a bridged record consumable once).
// Resources are ephemeral query results; the node re-validates them as
// unspent at submission time.
type Resource interface {
	// ResourceID returns a stable identifier usable in exclusion sets
	// (UTXO reference for coins, nonce for messages).
	ResourceID() string

	// ResourceAmount returns the spendable value carried by the resource.
	ResourceAmount() uint64

	// ResourceAssetID returns the asset the value is denominated in.
	// Messages always carry the base asset.
	ResourceAssetID() AssetID
}

// Coin is an unspent transaction output denominated in a specific asset.
type Coin struct {
	UtxoID  UtxoID  `json:"utxo_id"`
	Owner   Address `json:"owner"`
	Amount  uint64  `json:"amount"`
	AssetID AssetID `json:"asset_id"`
}

func (c Coin) ResourceID() string       { return c.UtxoID.String() }
func (c Coin) ResourceAmount() uint64   { return c.Amount }
func (c Coin) ResourceAssetID() AssetID { return c.AssetID }

// Message is a bridged record from the base layer, consumable once as a
// transaction input. Its value is always denominated in the base asset.
type Message struct {
	Sender    Address `json:"sender"`
	Recipient Address `json:"recipient"`
	Nonce     Nonce   `json:"nonce"`
	Amount    uint64  `json:"amount"`
	Data      []byte  `json:"data,omitempty"`
}

func (m Message) ResourceID() string       { return m.Nonce.Hex() }
func (m Message) ResourceAmount() uint64   { return m.Amount }
func (m Message) ResourceAssetID() AssetID { return BaseAssetID }
