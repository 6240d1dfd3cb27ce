// Package account implements the account layer of the Ember client:
// read-only queries (ViewAccount), signing accounts (Wallet), spendable
// input selection, fee reconciliation, and the transfer workflows.
//
// A ViewAccount can only observe the chain; signing-specific operations
// (witness attachment, Transfer, ForceTransferToContract,
// WithdrawToBaseLayer) exist only on Wallet, so "can this account
// spend?" is a type-level question rather than a runtime check.
package account

import (
	"context"

	"github.com/emberchain/libember-go/provider"
	"github.com/emberchain/libember-go/tx"
)

// ViewAccount is a read-only account: an address with an optionally
// bound provider. It holds no transaction state and is safe for
// concurrent use once constructed.
type ViewAccount struct {
	address tx.Address
	svc     provider.Service
}

// NewViewAccount creates a view-only account. svc may be nil; operations
// requiring the node then fail with ErrNoProvider.
func NewViewAccount(address tx.Address, svc provider.Service) *ViewAccount {
	return &ViewAccount{address: address, svc: svc}
}

// Address returns the account's address.
func (a *ViewAccount) Address() tx.Address { return a.address }

// BindService attaches a provider to the account.
func (a *ViewAccount) BindService(svc provider.Service) { a.svc = svc }

// tryService returns the bound provider or ErrNoProvider.
func (a *ViewAccount) tryService() (provider.Service, error) {
	if a.svc == nil {
		return nil, ErrNoProvider
	}
	return a.svc, nil
}

// GetCoins returns all unspent coins of asset owned by the account.
func (a *ViewAccount) GetCoins(ctx context.Context, asset tx.AssetID) ([]tx.Coin, error) {
	svc, err := a.tryService()
	if err != nil {
		return nil, err
	}
	return svc.GetCoins(ctx, a.address, asset)
}

// GetMessages returns all unspent bridged messages owned by the account.
func (a *ViewAccount) GetMessages(ctx context.Context) ([]tx.Message, error) {
	svc, err := a.tryService()
	if err != nil {
		return nil, err
	}
	return svc.GetMessages(ctx, a.address)
}

// GetAssetBalance returns the sum of spendable value of one asset, as
// opposed to GetCoins which returns the UTXOs themselves.
func (a *ViewAccount) GetAssetBalance(ctx context.Context, asset tx.AssetID) (uint64, error) {
	svc, err := a.tryService()
	if err != nil {
		return 0, err
	}
	return svc.GetAssetBalance(ctx, a.address, asset)
}

// GetBalances returns the spendable balance of every asset the account
// owns.
func (a *ViewAccount) GetBalances(ctx context.Context) (map[tx.AssetID]uint64, error) {
	svc, err := a.tryService()
	if err != nil {
		return nil, err
	}
	return svc.GetBalances(ctx, a.address)
}

// GetTransactions pages through the account's transaction history.
func (a *ViewAccount) GetTransactions(ctx context.Context, page provider.PaginationRequest) (*provider.PaginatedTransactions, error) {
	svc, err := a.tryService()
	if err != nil {
		return nil, err
	}
	return svc.GetTransactionsByOwner(ctx, a.address, page)
}

// GetSpendableResources returns coins and messages of asset adding up to
// at least amount. The returned resources are spendable at query time;
// the node re-validates at submission.
func (a *ViewAccount) GetSpendableResources(ctx context.Context, asset tx.AssetID, amount uint64) ([]tx.Resource, error) {
	svc, err := a.tryService()
	if err != nil {
		return nil, err
	}
	return svc.GetSpendableResources(ctx, provider.ResourceFilter{
		Owner:   a.address,
		AssetID: asset,
		Amount:  amount,
	})
}
