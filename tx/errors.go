package tx

import "errors"

var (
	// ErrInvalidHex indicates a hex-encoded chain primitive is malformed.
	ErrInvalidHex = errors.New("tx: invalid hex encoding")

	// ErrNoInputs indicates a transaction was built without any inputs.
	ErrNoInputs = errors.New("tx: transaction has no inputs")

	// ErrNoOutputs indicates a transaction was built without any outputs.
	ErrNoOutputs = errors.New("tx: transaction has no outputs")

	// ErrWitnessLimitExceeded indicates witness bytes exceed the policy limit.
	ErrWitnessLimitExceeded = errors.New("tx: witness limit exceeded")

	// ErrSigningFailed indicates a signer could not produce a witness.
	ErrSigningFailed = errors.New("tx: signing failed")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("tx: required parameter is nil")
)
