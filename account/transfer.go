package account

import (
	"context"
	"fmt"

	"github.com/emberchain/libember-go/tx"
)

// Transfer sends amount of asset to another address. It fails if the
// wallet's spendable balance cannot cover the amount plus fees. Returns
// the transaction id and the execution receipts.
func (w *Wallet) Transfer(ctx context.Context, to tx.Address, amount uint64, asset tx.AssetID, policies tx.TxPolicies) (tx.TxID, []tx.Receipt, error) {
	svc, err := w.tryService()
	if err != nil {
		return tx.TxID{}, nil, err
	}

	inputs, err := w.GetAssetInputsForAmount(ctx, asset, amount)
	if err != nil {
		return tx.TxID{}, nil, err
	}
	outputs := w.GetAssetOutputsForAmount(to, asset, amount)

	b := tx.PrepareTransfer(inputs, outputs, policies)
	w.addWitnesses(b)

	// When the transferred asset is the fee asset, its inputs already
	// carry base value; credit it so the fee is not funded twice.
	var usedBaseAmount uint64
	if asset == tx.BaseAssetID {
		usedBaseAmount = amount
	}
	if err := w.AdjustForFee(ctx, b, usedBaseAmount); err != nil {
		return tx.TxID{}, nil, err
	}

	chainID, err := svc.ChainID(ctx)
	if err != nil {
		return tx.TxID{}, nil, err
	}
	built, err := b.Build(chainID)
	if err != nil {
		return tx.TxID{}, nil, err
	}

	status, err := svc.SubmitAndAwaitCommit(ctx, built)
	if err != nil {
		return built.ID(), nil, err
	}

	receipts, err := status.TakeReceiptsChecked(nil)
	return built.ID(), receipts, err
}

// ForceTransferToContract unconditionally transfers balance of asset to
// the contract at to. Returns the transaction id as a display string and
// the execution receipts.
//
// CAUTION: funds sent this way are not recoverable by this layer if the
// contract cannot release them. The operation is irreversible and is not
// validated here.
func (w *Wallet) ForceTransferToContract(ctx context.Context, to tx.ContractID, balance uint64, asset tx.AssetID, policies tx.TxPolicies) (string, []tx.Receipt, error) {
	svc, err := w.tryService()
	if err != nil {
		return "", nil, err
	}

	// The contract input sits at index 0 so the contract output can
	// reference it; everything after it is appended resource inputs.
	inputs := []tx.Input{tx.NewContractInput(to)}

	assetInputs, err := w.GetAssetInputsForAmount(ctx, asset, balance)
	if err != nil {
		return "", nil, err
	}
	inputs = append(inputs, assetInputs...)

	outputs := []tx.Output{
		tx.NewContractOutput(0),
		tx.NewChangeOutput(w.Address(), asset),
	}

	b := tx.PrepareContractTransfer(to, balance, asset, inputs, outputs, policies)
	w.addWitnesses(b)

	var usedBaseAmount uint64
	if asset == tx.BaseAssetID {
		usedBaseAmount = balance
	}
	if err := w.AdjustForFee(ctx, b, usedBaseAmount); err != nil {
		return "", nil, err
	}

	chainID, err := svc.ChainID(ctx)
	if err != nil {
		return "", nil, err
	}
	built, err := b.Build(chainID)
	if err != nil {
		return "", nil, err
	}

	status, err := svc.SubmitAndAwaitCommit(ctx, built)
	if err != nil {
		return built.ID().String(), nil, err
	}

	receipts, err := status.TakeReceiptsChecked(nil)
	return built.ID().String(), receipts, err
}

// WithdrawToBaseLayer sends amount of the base asset to an address on
// the base layer. Returns the transaction id, the nonce of the emitted
// bridge message, and the execution receipts.
//
// A committed withdrawal whose receipts carry no message record fails
// with ErrMissingMessageReceipt: the submitted transaction did not emit
// the expected message, which indicates a defect in the node response.
func (w *Wallet) WithdrawToBaseLayer(ctx context.Context, to tx.Address, amount uint64, policies tx.TxPolicies) (tx.TxID, tx.Nonce, []tx.Receipt, error) {
	svc, err := w.tryService()
	if err != nil {
		return tx.TxID{}, tx.Nonce{}, nil, err
	}

	inputs, err := w.GetAssetInputsForAmount(ctx, tx.BaseAssetID, amount)
	if err != nil {
		return tx.TxID{}, tx.Nonce{}, nil, err
	}

	b := tx.PrepareMessageToOutput(to, amount, w.Address(), inputs, policies)
	w.addWitnesses(b)

	if err := w.AdjustForFee(ctx, b, amount); err != nil {
		return tx.TxID{}, tx.Nonce{}, nil, err
	}

	chainID, err := svc.ChainID(ctx)
	if err != nil {
		return tx.TxID{}, tx.Nonce{}, nil, err
	}
	built, err := b.Build(chainID)
	if err != nil {
		return tx.TxID{}, tx.Nonce{}, nil, err
	}

	status, err := svc.SubmitAndAwaitCommit(ctx, built)
	if err != nil {
		return built.ID(), tx.Nonce{}, nil, err
	}

	receipts, err := status.TakeReceiptsChecked(nil)
	if err != nil {
		return built.ID(), tx.Nonce{}, receipts, err
	}

	nonce, ok := tx.ExtractMessageNonce(receipts)
	if !ok {
		return built.ID(), tx.Nonce{}, receipts,
			fmt.Errorf("%w: tx %s", ErrMissingMessageReceipt, built.ID())
	}

	return built.ID(), nonce, receipts, nil
}
