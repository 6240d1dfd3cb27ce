package provider

import (
	"context"

	"github.com/emberchain/libember-go/tx"
)

// MockService is a test double for Service.
// All function fields must be set before the corresponding method is called.
type MockService struct {
	GetSpendableResourcesFn  func(ctx context.Context, filter ResourceFilter) ([]tx.Resource, error)
	EstimateFeeFn            func(ctx context.Context, draft []byte, gasPrice uint64) (uint64, error)
	ChainIDFn                func(ctx context.Context) (uint64, error)
	SubmitAndAwaitCommitFn   func(ctx context.Context, t *tx.Transaction) (*ExecutionStatus, error)
	GetCoinsFn               func(ctx context.Context, owner tx.Address, asset tx.AssetID) ([]tx.Coin, error)
	GetMessagesFn            func(ctx context.Context, owner tx.Address) ([]tx.Message, error)
	GetAssetBalanceFn        func(ctx context.Context, owner tx.Address, asset tx.AssetID) (uint64, error)
	GetBalancesFn            func(ctx context.Context, owner tx.Address) (map[tx.AssetID]uint64, error)
	GetTransactionsByOwnerFn func(ctx context.Context, owner tx.Address, page PaginationRequest) (*PaginatedTransactions, error)
}

func (m *MockService) GetSpendableResources(ctx context.Context, filter ResourceFilter) ([]tx.Resource, error) {
	return m.GetSpendableResourcesFn(ctx, filter)
}
func (m *MockService) EstimateFee(ctx context.Context, draft []byte, gasPrice uint64) (uint64, error) {
	return m.EstimateFeeFn(ctx, draft, gasPrice)
}
func (m *MockService) ChainID(ctx context.Context) (uint64, error) {
	return m.ChainIDFn(ctx)
}
func (m *MockService) SubmitAndAwaitCommit(ctx context.Context, t *tx.Transaction) (*ExecutionStatus, error) {
	return m.SubmitAndAwaitCommitFn(ctx, t)
}
func (m *MockService) GetCoins(ctx context.Context, owner tx.Address, asset tx.AssetID) ([]tx.Coin, error) {
	return m.GetCoinsFn(ctx, owner, asset)
}
func (m *MockService) GetMessages(ctx context.Context, owner tx.Address) ([]tx.Message, error) {
	return m.GetMessagesFn(ctx, owner)
}
func (m *MockService) GetAssetBalance(ctx context.Context, owner tx.Address, asset tx.AssetID) (uint64, error) {
	return m.GetAssetBalanceFn(ctx, owner, asset)
}
func (m *MockService) GetBalances(ctx context.Context, owner tx.Address) (map[tx.AssetID]uint64, error) {
	return m.GetBalancesFn(ctx, owner)
}
func (m *MockService) GetTransactionsByOwner(ctx context.Context, owner tx.Address, page PaginationRequest) (*PaginatedTransactions, error) {
	return m.GetTransactionsByOwnerFn(ctx, owner, page)
}
