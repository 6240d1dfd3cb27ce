package account

import (
	"github.com/emberchain/libember-go/provider"
	"github.com/emberchain/libember-go/tx"
)

// Wallet is a signing account: a ViewAccount plus a Signer. Only a
// Wallet can build and submit transactions.
//
// A Wallet provides no mutual exclusion over its resource set:
// concurrent workflow invocations may select overlapping resources and
// one of the resulting transactions will be rejected by the node.
// Callers requiring serialized spending must impose their own ordering.
type Wallet struct {
	ViewAccount
	signer tx.Signer
}

// NewWallet creates a signing account for the signer's address. svc may
// be nil; workflows then fail with ErrNoProvider.
func NewWallet(signer tx.Signer, svc provider.Service) *Wallet {
	return &Wallet{
		ViewAccount: ViewAccount{address: signer.Address(), svc: svc},
		signer:      signer,
	}
}

// Signer returns the wallet's signer.
func (w *Wallet) Signer() tx.Signer { return w.signer }

// addWitnesses registers the wallet's signer on the builder. The
// registration is idempotent, so inputs added later by fee
// reconciliation reuse the same witness slot: additional inputs from the
// same signer never require a new witness.
func (w *Wallet) addWitnesses(b *tx.ScriptBuilder) {
	b.AddSigner(w.signer)
}

// GetAssetOutputsForAmount returns the output pair of a transfer: a coin
// output paying the recipient and a change output returning the
// remainder to this wallet. The change amount is computed by the node;
// the output only states the owner and asset.
func (w *Wallet) GetAssetOutputsForAmount(to tx.Address, asset tx.AssetID, amount uint64) []tx.Output {
	return []tx.Output{
		tx.NewCoinOutput(to, amount, asset),
		tx.NewChangeOutput(w.Address(), asset),
	}
}
