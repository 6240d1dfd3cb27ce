package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberchain/libember-go/provider"
	"github.com/emberchain/libember-go/tx"
)

func successStatus(receipts []tx.Receipt) func(context.Context, *tx.Transaction) (*provider.ExecutionStatus, error) {
	return func(_ context.Context, t *tx.Transaction) (*provider.ExecutionStatus, error) {
		return &provider.ExecutionStatus{
			TxID:     t.ID(),
			State:    provider.CommitSuccess,
			Receipts: receipts,
		}, nil
	}
}

var okReceipts = []tx.Receipt{
	{Type: tx.ReceiptTypeScriptResult, Result: tx.ScriptResultSuccess, GasUsed: 42},
}

func TestTransfer_SelfFundingBaseAsset(t *testing.T) {
	sender := testAddr(0x01)
	recipient := testAddr(0x02)

	// One coin of 10,000,000; transfer 1,000,000; estimated fee 500.
	pool := []tx.Resource{testCoin(0x01, sender, 10_000_000, tx.BaseAssetID)}

	estimateCalls := 0
	var submitted *tx.Transaction
	svc := &provider.MockService{
		GetSpendableResourcesFn: resourcesFn(pool),
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			estimateCalls++
			return 500, nil
		},
		ChainIDFn: func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: func(ctx context.Context, built *tx.Transaction) (*provider.ExecutionStatus, error) {
			submitted = built
			return successStatus(okReceipts)(ctx, built)
		},
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	txID, receipts, err := w.Transfer(context.Background(), recipient, 1_000_000, tx.BaseAssetID, tx.TxPolicies{})
	require.NoError(t, err)
	assert.NotEqual(t, tx.TxID{}, txID)
	assert.Equal(t, okReceipts, receipts)

	// The transfer amount is credited toward the fee, so the single
	// 10,000,000 coin covers everything in one reconciliation pass.
	assert.Equal(t, 1, estimateCalls)

	require.NotNil(t, submitted)
	require.Len(t, submitted.Inputs, 1)
	assert.Equal(t, uint64(10_000_000), submitted.Inputs[0].Amount)

	require.Len(t, submitted.Outputs, 2)
	assert.Equal(t, tx.OutputTypeCoin, submitted.Outputs[0].Type)
	assert.Equal(t, recipient, submitted.Outputs[0].To)
	assert.Equal(t, uint64(1_000_000), submitted.Outputs[0].Amount)
	assert.Equal(t, tx.OutputTypeChange, submitted.Outputs[1].Type)
	assert.Equal(t, sender, submitted.Outputs[1].To)
	assert.Equal(t, tx.BaseAssetID, submitted.Outputs[1].AssetID)

	require.Len(t, submitted.Witnesses, 1)
}

func TestTransfer_TightBalancePullsFeeInput(t *testing.T) {
	sender := testAddr(0x01)
	recipient := testAddr(0x02)

	// The first coin exactly matches the transfer amount, so the fee
	// must be funded by a second input.
	pool := []tx.Resource{
		testCoin(0x01, sender, 1_000_000, tx.BaseAssetID),
		testCoin(0x02, sender, 600, tx.BaseAssetID),
	}

	var submitted *tx.Transaction
	svc := &provider.MockService{
		GetSpendableResourcesFn: resourcesFn(pool),
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			return 500, nil
		},
		ChainIDFn: func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: func(ctx context.Context, built *tx.Transaction) (*provider.ExecutionStatus, error) {
			submitted = built
			return successStatus(okReceipts)(ctx, built)
		},
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	_, _, err := w.Transfer(context.Background(), recipient, 1_000_000, tx.BaseAssetID, tx.TxPolicies{})
	require.NoError(t, err)

	require.NotNil(t, submitted)
	require.Len(t, submitted.Inputs, 2)
	var total uint64
	for _, in := range submitted.Inputs {
		total += in.Amount
	}
	assert.GreaterOrEqual(t, total, uint64(1_000_500),
		"total input value must cover amount plus fee")
}

func TestTransfer_SurplusCoversFeeLargerThanAmount(t *testing.T) {
	sender := testAddr(0x01)
	recipient := testAddr(0x02)

	pool := []tx.Resource{testCoin(0x01, sender, 1_000_000, tx.BaseAssetID)}

	selectionCalls := 0
	svc := &provider.MockService{
		GetSpendableResourcesFn: func(ctx context.Context, f provider.ResourceFilter) ([]tx.Resource, error) {
			selectionCalls++
			return resourcesFn(pool)(ctx, f)
		},
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			// The fee dwarfs the transfer amount, but the single coin's
			// surplus absorbs it.
			return 2_000, nil
		},
		ChainIDFn: func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: func(ctx context.Context, built *tx.Transaction) (*provider.ExecutionStatus, error) {
			return successStatus(okReceipts)(ctx, built)
		},
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	_, _, err := w.Transfer(context.Background(), recipient, 1_000, tx.BaseAssetID, tx.TxPolicies{})
	require.NoError(t, err)

	assert.Equal(t, 1, selectionCalls,
		"an oversized coin's surplus must not trigger further selection")
}

func TestTransfer_NonBaseAssetPullsFeeInputs(t *testing.T) {
	sender := testAddr(0x01)
	recipient := testAddr(0x02)
	var token tx.AssetID
	token[0] = 0x07

	pool := []tx.Resource{
		testCoin(0x01, sender, 5_000, token),
		testCoin(0x02, sender, 900, tx.BaseAssetID),
	}

	var submitted *tx.Transaction
	svc := &provider.MockService{
		GetSpendableResourcesFn: resourcesFn(pool),
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			return 300, nil
		},
		ChainIDFn: func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: func(ctx context.Context, built *tx.Transaction) (*provider.ExecutionStatus, error) {
			submitted = built
			return successStatus(okReceipts)(ctx, built)
		},
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	_, _, err := w.Transfer(context.Background(), recipient, 4_000, token, tx.TxPolicies{})
	require.NoError(t, err)

	// Token input for the transfer plus a base coin for the fee.
	require.NotNil(t, submitted)
	require.Len(t, submitted.Inputs, 2)
	assert.Equal(t, token, submitted.Inputs[0].AssetID)
	assert.Equal(t, tx.BaseAssetID, submitted.Inputs[1].AssetID)

	// One change output per touched asset.
	changeAssets := map[tx.AssetID]int{}
	for _, out := range submitted.Outputs {
		if out.Type == tx.OutputTypeChange {
			changeAssets[out.AssetID]++
		}
	}
	assert.Equal(t, map[tx.AssetID]int{token: 1, tx.BaseAssetID: 1}, changeAssets)
}

func TestTransfer_NoProvider(t *testing.T) {
	w := NewWallet(&testSigner{addr: testAddr(0x01)}, nil)
	_, _, err := w.Transfer(context.Background(), testAddr(0x02), 100, tx.BaseAssetID, tx.TxPolicies{})
	assert.ErrorIs(t, err, ErrNoProvider)
}

func TestTransfer_SubmissionRejected(t *testing.T) {
	sender := testAddr(0x01)
	pool := []tx.Resource{testCoin(0x01, sender, 10_000, tx.BaseAssetID)}
	svc := &provider.MockService{
		GetSpendableResourcesFn: resourcesFn(pool),
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			return 100, nil
		},
		ChainIDFn: func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: func(context.Context, *tx.Transaction) (*provider.ExecutionStatus, error) {
			return nil, provider.ErrSubmissionRejected
		},
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	_, _, err := w.Transfer(context.Background(), testAddr(0x02), 1_000, tx.BaseAssetID, tx.TxPolicies{})
	assert.ErrorIs(t, err, provider.ErrSubmissionRejected)
}

func TestForceTransferToContract_ContractInputStaysFirst(t *testing.T) {
	sender := testAddr(0x01)
	var target tx.ContractID
	target[0] = 0xcc

	pool := []tx.Resource{
		testCoin(0x01, sender, 2_000, tx.BaseAssetID),
		testCoin(0x02, sender, 3_000, tx.BaseAssetID),
	}

	var submitted *tx.Transaction
	svc := &provider.MockService{
		GetSpendableResourcesFn: resourcesFn(pool),
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			// Force a top-up beyond the transferred balance.
			return 2_500, nil
		},
		ChainIDFn: func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: func(ctx context.Context, built *tx.Transaction) (*provider.ExecutionStatus, error) {
			submitted = built
			return successStatus(okReceipts)(ctx, built)
		},
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	txIDStr, receipts, err := w.ForceTransferToContract(context.Background(), target, 2_000, tx.BaseAssetID, tx.TxPolicies{})
	require.NoError(t, err)
	assert.NotEmpty(t, txIDStr)
	assert.Equal(t, okReceipts, receipts)

	// Fee reconciliation appended inputs, but the contract input kept
	// index 0 and the contract output still references it.
	require.NotNil(t, submitted)
	require.GreaterOrEqual(t, len(submitted.Inputs), 3)
	assert.Equal(t, tx.InputTypeContract, submitted.Inputs[0].Type)
	assert.Equal(t, target, submitted.Inputs[0].ContractID)
	assert.Equal(t, tx.UtxoID{}, submitted.Inputs[0].UtxoID, "contract input carries a zeroed placeholder reference")

	assert.Equal(t, tx.OutputTypeContract, submitted.Outputs[0].Type)
	assert.Equal(t, uint16(0), submitted.Outputs[0].InputIndex)
}

func TestWithdrawToBaseLayer_ExtractsNonce(t *testing.T) {
	sender := testAddr(0x01)
	baseLayerAddr := testAddr(0x02)
	var nonce tx.Nonce
	nonce[0] = 0x42

	pool := []tx.Resource{testCoin(0x01, sender, 100_000, tx.BaseAssetID)}
	receipts := []tx.Receipt{
		{Type: tx.ReceiptTypeMessageOut, Nonce: nonce, Recipient: baseLayerAddr, Amount: 9_000},
		{Type: tx.ReceiptTypeScriptResult, Result: tx.ScriptResultSuccess},
	}
	svc := &provider.MockService{
		GetSpendableResourcesFn: resourcesFn(pool),
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			return 500, nil
		},
		ChainIDFn:              func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: successStatus(receipts),
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	txID, gotNonce, gotReceipts, err := w.WithdrawToBaseLayer(context.Background(), baseLayerAddr, 9_000, tx.TxPolicies{})
	require.NoError(t, err)
	assert.NotEqual(t, tx.TxID{}, txID)
	assert.Equal(t, nonce, gotNonce)
	assert.Equal(t, receipts, gotReceipts)
}

func TestWithdrawToBaseLayer_MissingMessageReceiptIsFatal(t *testing.T) {
	sender := testAddr(0x01)
	pool := []tx.Resource{testCoin(0x01, sender, 100_000, tx.BaseAssetID)}

	// Committed successfully but no message record in the receipts.
	svc := &provider.MockService{
		GetSpendableResourcesFn: resourcesFn(pool),
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			return 500, nil
		},
		ChainIDFn:              func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: successStatus(okReceipts),
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	_, nonce, receipts, err := w.WithdrawToBaseLayer(context.Background(), testAddr(0x02), 9_000, tx.TxPolicies{})
	assert.ErrorIs(t, err, ErrMissingMessageReceipt)
	assert.Equal(t, tx.Nonce{}, nonce, "no default nonce may be fabricated")
	assert.Equal(t, okReceipts, receipts, "receipts stay available for inspection")
}

func TestWithdrawToBaseLayer_RevertedExecution(t *testing.T) {
	sender := testAddr(0x01)
	pool := []tx.Resource{testCoin(0x01, sender, 100_000, tx.BaseAssetID)}
	svc := &provider.MockService{
		GetSpendableResourcesFn: resourcesFn(pool),
		EstimateFeeFn: func(context.Context, []byte, uint64) (uint64, error) {
			return 500, nil
		},
		ChainIDFn: func(context.Context) (uint64, error) { return 7, nil },
		SubmitAndAwaitCommitFn: func(_ context.Context, built *tx.Transaction) (*provider.ExecutionStatus, error) {
			return &provider.ExecutionStatus{
				TxID:   built.ID(),
				State:  provider.CommitFailure,
				Reason: "out of gas",
				Receipts: []tx.Receipt{
					{Type: tx.ReceiptTypeRevert},
					{Type: tx.ReceiptTypeScriptResult, Result: tx.ScriptResultRevert},
				},
			}, nil
		},
	}
	w := NewWallet(&testSigner{addr: sender}, svc)

	_, _, receipts, err := w.WithdrawToBaseLayer(context.Background(), testAddr(0x02), 9_000, tx.TxPolicies{})
	assert.ErrorIs(t, err, provider.ErrExecutionReverted)
	assert.Len(t, receipts, 2, "receipts of a reverted execution are returned for inspection")
}
