package provider

import "errors"

var (
	// ErrConnectionFailed indicates the client could not reach the node.
	ErrConnectionFailed = errors.New("provider: connection failed")

	// ErrInvalidResponse indicates the node returned a malformed or
	// unexpected response.
	ErrInvalidResponse = errors.New("provider: invalid response")

	// ErrEstimationFailed indicates the node could not dry-run the draft
	// transaction to report its fee.
	ErrEstimationFailed = errors.New("provider: fee estimation failed")

	// ErrSubmissionRejected indicates the node rejected the submitted
	// transaction (double-spend, expired maturity, ...). The node's
	// rejection reason is wrapped verbatim.
	ErrSubmissionRejected = errors.New("provider: submission rejected")

	// ErrExecutionReverted indicates the transaction was included but its
	// script execution failed. Receipts remain available for inspection.
	ErrExecutionReverted = errors.New("provider: script execution reverted")

	// ErrTxNotFound indicates the requested transaction does not exist.
	ErrTxNotFound = errors.New("provider: transaction not found")

	// ErrInvalidNetwork indicates an unknown network name with no
	// explicit configuration.
	ErrInvalidNetwork = errors.New("provider: invalid network name")

	// ErrNoSeedRecords indicates DNS seed discovery returned no node
	// endpoints.
	ErrNoSeedRecords = errors.New("provider: no seed records found")
)
