// Package provider implements the node collaborator of the transaction
// construction layer: spendable-resource queries, dry-run fee
// estimation, submission with commitment await, and account queries,
// over JSON-RPC.
package provider

import (
	"context"

	"github.com/emberchain/libember-go/tx"
)

// Service is the node interface consumed by accounts. Client is the
// JSON-RPC implementation; MockService is the test double.
type Service interface {
	// GetSpendableResources returns unspent coins and messages matching
	// the filter, best-effort: the node re-validates spendability at
	// submission. Results carry at least filter.Amount of value when the
	// owner has it; fewer resources otherwise.
	GetSpendableResources(ctx context.Context, filter ResourceFilter) ([]tx.Resource, error)

	// EstimateFee dry-runs the draft transaction serialization at the
	// given gas price and returns the required fee in base-asset units.
	EstimateFee(ctx context.Context, draft []byte, gasPrice uint64) (uint64, error)

	// ChainID returns the chain identifier mixed into transaction ids.
	ChainID(ctx context.Context) (uint64, error)

	// SubmitAndAwaitCommit submits the transaction and blocks until the
	// node reports a terminal commit or rejection.
	SubmitAndAwaitCommit(ctx context.Context, t *tx.Transaction) (*ExecutionStatus, error)

	// GetCoins returns all unspent coins of asset owned by owner.
	GetCoins(ctx context.Context, owner tx.Address, asset tx.AssetID) ([]tx.Coin, error)

	// GetMessages returns all unspent bridged messages owned by owner.
	GetMessages(ctx context.Context, owner tx.Address) ([]tx.Message, error)

	// GetAssetBalance returns the sum of spendable value of one asset.
	GetAssetBalance(ctx context.Context, owner tx.Address, asset tx.AssetID) (uint64, error)

	// GetBalances returns the spendable balance of every asset owned by
	// owner.
	GetBalances(ctx context.Context, owner tx.Address) (map[tx.AssetID]uint64, error)

	// GetTransactionsByOwner pages through transactions involving owner.
	GetTransactionsByOwner(ctx context.Context, owner tx.Address, page PaginationRequest) (*PaginatedTransactions, error)
}

// ResourceFilter selects spendable resources for an owner.
type ResourceFilter struct {
	// Owner restricts results to resources spendable by this address.
	Owner tx.Address `json:"owner"`

	// AssetID restricts results to one asset. Messages match only the
	// base asset.
	AssetID tx.AssetID `json:"asset_id"`

	// Amount is the minimum cumulative value the node should return.
	Amount uint64 `json:"amount"`

	// ExcludedIDs lists resource ids that must not be returned
	// (already committed to the transaction under construction).
	ExcludedIDs []string `json:"excluded_ids,omitempty"`

	// Cursor continues a previous query.
	Cursor string `json:"cursor,omitempty"`
}

// PaginationRequest requests one page of results.
type PaginationRequest struct {
	Cursor  string `json:"cursor,omitempty"`
	Results int    `json:"results"`
}

// TransactionResponse summarizes one historical transaction.
type TransactionResponse struct {
	ID     tx.TxID      `json:"id"`
	Status CommitState  `json:"status"`
	Time   int64        `json:"time"`
	Tx     []tx.Receipt `json:"receipts,omitempty"`
}

// PaginatedTransactions is one page of transaction history.
type PaginatedTransactions struct {
	Results []TransactionResponse `json:"results"`
	Cursor  string                `json:"cursor,omitempty"`
	HasNext bool                  `json:"has_next"`
}
