package provider

import (
	"fmt"

	"github.com/emberchain/libember-go/tx"
)

// CommitState is the terminal state a submitted transaction reached.
type CommitState string

const (
	// CommitSuccess: included and executed successfully.
	CommitSuccess CommitState = "success"
	// CommitFailure: included but execution failed.
	CommitFailure CommitState = "failure"
	// CommitSqueezedOut: dropped before inclusion (e.g. double-spend lost
	// the race).
	CommitSqueezedOut CommitState = "squeezed_out"
)

// ExecutionStatus is the node's terminal report for a submitted
// transaction.
type ExecutionStatus struct {
	TxID     tx.TxID      `json:"txid"`
	State    CommitState  `json:"state"`
	Reason   string       `json:"reason,omitempty"`
	Receipts []tx.Receipt `json:"receipts,omitempty"`
}

// TakeReceiptsChecked returns the execution receipts, verifying the
// script result. Receipts are returned even on error so callers can
// inspect the failure.
//
// expectedResult optionally pins the ScriptResult code; nil accepts
// ScriptResultSuccess only.
func (s *ExecutionStatus) TakeReceiptsChecked(expectedResult *uint64) ([]tx.Receipt, error) {
	if s.State != CommitSuccess {
		return s.Receipts, fmt.Errorf("%w: %s: %s", ErrExecutionReverted, s.State, s.Reason)
	}

	want := tx.ScriptResultSuccess
	if expectedResult != nil {
		want = *expectedResult
	}

	result, ok := tx.ScriptResult(s.Receipts)
	if !ok {
		return s.Receipts, fmt.Errorf("%w: missing script result receipt", ErrInvalidResponse)
	}
	if result.Result != want {
		return s.Receipts, fmt.Errorf("%w: script result %d, want %d", ErrExecutionReverted, result.Result, want)
	}

	return s.Receipts, nil
}
