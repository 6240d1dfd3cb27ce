package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberchain/libember-go/tx"
)

func TestTakeReceiptsCheckedSuccess(t *testing.T) {
	receipts := []tx.Receipt{
		{Type: tx.ReceiptTypeTransfer, Amount: 100},
		{Type: tx.ReceiptTypeScriptResult, Result: tx.ScriptResultSuccess, GasUsed: 50},
	}
	status := &ExecutionStatus{State: CommitSuccess, Receipts: receipts}

	got, err := status.TakeReceiptsChecked(nil)
	require.NoError(t, err)
	assert.Equal(t, receipts, got)
}

func TestTakeReceiptsCheckedFailureState(t *testing.T) {
	receipts := []tx.Receipt{{Type: tx.ReceiptTypeRevert}}
	status := &ExecutionStatus{
		State:    CommitFailure,
		Reason:   "assertion failed",
		Receipts: receipts,
	}

	got, err := status.TakeReceiptsChecked(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutionReverted)
	assert.Contains(t, err.Error(), "assertion failed")
	assert.Equal(t, receipts, got, "receipts stay available for inspection")
}

func TestTakeReceiptsCheckedSqueezedOut(t *testing.T) {
	status := &ExecutionStatus{State: CommitSqueezedOut, Reason: "lost double-spend race"}

	_, err := status.TakeReceiptsChecked(nil)
	assert.ErrorIs(t, err, ErrExecutionReverted)
	assert.Contains(t, err.Error(), "squeezed_out")
}

func TestTakeReceiptsCheckedMissingScriptResult(t *testing.T) {
	receipts := []tx.Receipt{{Type: tx.ReceiptTypeTransfer, Amount: 100}}
	status := &ExecutionStatus{State: CommitSuccess, Receipts: receipts}

	got, err := status.TakeReceiptsChecked(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, receipts, got)
}

func TestTakeReceiptsCheckedResultMismatch(t *testing.T) {
	status := &ExecutionStatus{
		State: CommitSuccess,
		Receipts: []tx.Receipt{
			{Type: tx.ReceiptTypeScriptResult, Result: tx.ScriptResultRevert},
		},
	}

	_, err := status.TakeReceiptsChecked(nil)
	assert.ErrorIs(t, err, ErrExecutionReverted)
}

func TestTakeReceiptsCheckedExpectedResult(t *testing.T) {
	status := &ExecutionStatus{
		State: CommitSuccess,
		Receipts: []tx.Receipt{
			{Type: tx.ReceiptTypeScriptResult, Result: tx.ScriptResultRevert},
		},
	}

	// Pinning the expected code accepts what the default check rejects.
	want := tx.ScriptResultRevert
	got, err := status.TakeReceiptsChecked(&want)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
