package account

import "errors"

var (
	// ErrNoProvider indicates the account was used without a bound
	// provider service.
	ErrNoProvider = errors.New("account: no provider was set up: bind a provider to the account")

	// ErrInsufficientFunds indicates resource selection could not reach
	// the requested amount.
	ErrInsufficientFunds = errors.New("account: insufficient funds")

	// ErrMissingMessageReceipt indicates a withdrawal transaction was
	// committed but its receipts contain no base-layer message record.
	// This is a defect in the node response, not a user error.
	ErrMissingMessageReceipt = errors.New("account: no base-layer message receipt returned by the node")
)
