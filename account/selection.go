package account

import (
	"context"
	"fmt"

	"github.com/emberchain/libember-go/provider"
	"github.com/emberchain/libember-go/tx"
)

// GetAssetInputsForAmount selects spendable resources of asset summing
// to at least amount and converts them to inputs validated by this
// wallet's witness.
//
// Selection is greedy first-fit: resources are accumulated in the order
// the provider returns them and accumulation stops at the first resource
// that crosses the threshold. This bounds dust by not pulling more UTXOs
// than necessary but does not minimize UTXO count; alternative policies
// belong in the provider's ordering of results.
//
// amount of zero returns no inputs without querying the provider.
func (w *Wallet) GetAssetInputsForAmount(ctx context.Context, asset tx.AssetID, amount uint64) ([]tx.Input, error) {
	return w.selectInputs(ctx, asset, amount, nil)
}

// selectInputs is GetAssetInputsForAmount with an exclusion set of
// resource ids already committed elsewhere. Fee reconciliation uses the
// exclusion set to avoid re-selecting inputs already on the builder.
func (w *Wallet) selectInputs(ctx context.Context, asset tx.AssetID, amount uint64, excluded []string) ([]tx.Input, error) {
	if amount == 0 {
		return nil, nil
	}

	svc, err := w.tryService()
	if err != nil {
		return nil, err
	}

	resources, err := svc.GetSpendableResources(ctx, provider.ResourceFilter{
		Owner:       w.Address(),
		AssetID:     asset,
		Amount:      amount,
		ExcludedIDs: excluded,
	})
	if err != nil {
		return nil, err
	}

	var (
		inputs []tx.Input
		total  uint64
	)
	for _, r := range resources {
		if total >= amount {
			break
		}
		inputs = append(inputs, tx.NewInputFromResource(r, 0))
		total += r.ResourceAmount()
	}

	if total < amount {
		return nil, fmt.Errorf("%w: asset %s: have %d, need %d",
			ErrInsufficientFunds, asset.Hex(), total, amount)
	}
	return inputs, nil
}
