package account

import (
	"context"

	"github.com/emberchain/libember-go/tx"
)

// AdjustForFee adds base-asset inputs to the builder until the
// transaction covers its own fee, mutating b in place.
//
// usedBaseAmount is the base-asset value the transaction spends for its
// own purpose (the transfer amount when the base asset is being sent).
// Only input value beyond it is available to pay the fee, so the
// shortfall of each pass is the required fee minus that surplus. Inputs
// whose value the transaction consumes are never counted toward the fee,
// and surplus already sitting on the builder is never funded twice.
//
// The fee is a fixed point: adding inputs grows the transaction, which
// can grow the fee. Each pass asks the node for the fee of the current
// draft, tops up the shortfall through input selection, and loops only
// when new inputs were added. Every successful pass grows the surplus by
// at least the shortfall, and the resource set is finite, so the loop
// either converges or fails with ErrInsufficientFunds within a number of
// passes bounded by the number of distinct resources consumed.
//
// Requires contract inputs to be at the start of the builder's inputs so
// their indexes are retained (new inputs are appended, never inserted).
func (w *Wallet) AdjustForFee(ctx context.Context, b *tx.ScriptBuilder, usedBaseAmount uint64) error {
	svc, err := w.tryService()
	if err != nil {
		return err
	}

	for {
		requiredFee, err := svc.EstimateFee(ctx, b.Bytes(), b.Policies.GasPriceCeiling)
		if err != nil {
			return err
		}

		var surplus uint64
		if committed := b.CommittedAmount(tx.BaseAssetID); committed > usedBaseAmount {
			surplus = committed - usedBaseAmount
		}
		if requiredFee <= surplus {
			// This pass would add zero new inputs: the fixed point.
			return nil
		}
		missing := requiredFee - surplus

		newInputs, err := w.selectInputs(ctx, tx.BaseAssetID, missing, b.UsedResourceIDs())
		if err != nil {
			return err
		}

		tx.AdjustInputsOutputs(b, newInputs, w.Address())
	}
}
