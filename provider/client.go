package provider

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/emberchain/libember-go/tx"
)

// defaultPollInterval is the delay between commitment-status polls.
const defaultPollInterval = 500 * time.Millisecond

// Client implements Service over an Ember node's JSON-RPC interface.
type Client struct {
	rpc  *RPCClient
	poll time.Duration

	mu      sync.Mutex
	chainID uint64
	haveID  bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithPollInterval sets the delay between commitment-status polls.
func WithPollInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.poll = d }
}

// NewClient creates a Service implementation talking to the node at
// cfg.URL.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		rpc:  NewRPCClient(cfg),
		poll: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientWithRPC creates a Client over an existing RPC transport
// (e.g. one carrying a logger).
func NewClientWithRPC(rpc *RPCClient, opts ...ClientOption) *Client {
	c := &Client{rpc: rpc, poll: defaultPollInterval}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- wire DTOs -------------------------------------------------------

type wireCoin struct {
	TxID        string `json:"txid"`
	OutputIndex uint16 `json:"output_index"`
	Owner       string `json:"owner"`
	Amount      uint64 `json:"amount"`
	AssetID     string `json:"asset_id"`
}

type wireMessage struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Nonce     string `json:"nonce"`
	Amount    uint64 `json:"amount"`
	Data      string `json:"data,omitempty"`
}

type wireResource struct {
	Type    string       `json:"type"` // "coin" | "message"
	Coin    *wireCoin    `json:"coin,omitempty"`
	Message *wireMessage `json:"message,omitempty"`
}

type wireReceipt struct {
	Type      string `json:"type"`
	Contract  string `json:"contract,omitempty"`
	AssetID   string `json:"asset_id,omitempty"`
	Sender    string `json:"sender,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Nonce     string `json:"nonce,omitempty"`
	Data      string `json:"data,omitempty"`
	Amount    uint64 `json:"amount,omitempty"`
	Result    uint64 `json:"result,omitempty"`
	GasUsed   uint64 `json:"gas_used,omitempty"`
}

type wireStatus struct {
	TxID     string        `json:"txid"`
	State    string        `json:"state"` // "pending" | terminal CommitState
	Reason   string        `json:"reason,omitempty"`
	Receipts []wireReceipt `json:"receipts,omitempty"`
}

type wireFilter struct {
	Owner       string   `json:"owner"`
	AssetID     string   `json:"asset_id"`
	Amount      uint64   `json:"amount"`
	ExcludedIDs []string `json:"excluded_ids,omitempty"`
	Cursor      string   `json:"cursor,omitempty"`
}

var receiptTypes = map[string]tx.ReceiptType{
	"call":          tx.ReceiptTypeCall,
	"transfer":      tx.ReceiptTypeTransfer,
	"message_out":   tx.ReceiptTypeMessageOut,
	"revert":        tx.ReceiptTypeRevert,
	"script_result": tx.ReceiptTypeScriptResult,
}

func decodeCoin(w wireCoin) (tx.Coin, error) {
	txid, err := tx.TxIDFromHex(w.TxID)
	if err != nil {
		return tx.Coin{}, fmt.Errorf("%w: coin txid: %w", ErrInvalidResponse, err)
	}
	owner, err := tx.AddressFromHex(w.Owner)
	if err != nil {
		return tx.Coin{}, fmt.Errorf("%w: coin owner: %w", ErrInvalidResponse, err)
	}
	asset, err := tx.AssetIDFromHex(w.AssetID)
	if err != nil {
		return tx.Coin{}, fmt.Errorf("%w: coin asset: %w", ErrInvalidResponse, err)
	}
	return tx.Coin{
		UtxoID:  tx.UtxoID{TxID: txid, OutputIndex: w.OutputIndex},
		Owner:   owner,
		Amount:  w.Amount,
		AssetID: asset,
	}, nil
}

func decodeMessage(w wireMessage) (tx.Message, error) {
	sender, err := tx.AddressFromHex(w.Sender)
	if err != nil {
		return tx.Message{}, fmt.Errorf("%w: message sender: %w", ErrInvalidResponse, err)
	}
	recipient, err := tx.AddressFromHex(w.Recipient)
	if err != nil {
		return tx.Message{}, fmt.Errorf("%w: message recipient: %w", ErrInvalidResponse, err)
	}
	nonce, err := tx.NonceFromHex(w.Nonce)
	if err != nil {
		return tx.Message{}, fmt.Errorf("%w: message nonce: %w", ErrInvalidResponse, err)
	}
	var data []byte
	if w.Data != "" {
		data, err = hex.DecodeString(w.Data)
		if err != nil {
			return tx.Message{}, fmt.Errorf("%w: message data: %w", ErrInvalidResponse, err)
		}
	}
	return tx.Message{
		Sender:    sender,
		Recipient: recipient,
		Nonce:     nonce,
		Amount:    w.Amount,
		Data:      data,
	}, nil
}

func decodeReceipt(w wireReceipt) (tx.Receipt, error) {
	rt, ok := receiptTypes[w.Type]
	if !ok {
		return tx.Receipt{}, fmt.Errorf("%w: unknown receipt type %q", ErrInvalidResponse, w.Type)
	}
	r := tx.Receipt{Type: rt, Amount: w.Amount, Result: w.Result, GasUsed: w.GasUsed}
	var err error
	if w.Contract != "" {
		if r.Contract, err = tx.ContractIDFromHex(w.Contract); err != nil {
			return tx.Receipt{}, fmt.Errorf("%w: receipt contract: %w", ErrInvalidResponse, err)
		}
	}
	if w.AssetID != "" {
		if r.AssetID, err = tx.AssetIDFromHex(w.AssetID); err != nil {
			return tx.Receipt{}, fmt.Errorf("%w: receipt asset: %w", ErrInvalidResponse, err)
		}
	}
	if w.Sender != "" {
		if r.Sender, err = tx.AddressFromHex(w.Sender); err != nil {
			return tx.Receipt{}, fmt.Errorf("%w: receipt sender: %w", ErrInvalidResponse, err)
		}
	}
	if w.Recipient != "" {
		if r.Recipient, err = tx.AddressFromHex(w.Recipient); err != nil {
			return tx.Receipt{}, fmt.Errorf("%w: receipt recipient: %w", ErrInvalidResponse, err)
		}
	}
	if w.Nonce != "" {
		if r.Nonce, err = tx.NonceFromHex(w.Nonce); err != nil {
			return tx.Receipt{}, fmt.Errorf("%w: receipt nonce: %w", ErrInvalidResponse, err)
		}
	}
	if w.Data != "" {
		if r.Data, err = hex.DecodeString(w.Data); err != nil {
			return tx.Receipt{}, fmt.Errorf("%w: receipt data: %w", ErrInvalidResponse, err)
		}
	}
	return r, nil
}

func decodeStatus(w wireStatus) (*ExecutionStatus, error) {
	txid, err := tx.TxIDFromHex(w.TxID)
	if err != nil {
		return nil, fmt.Errorf("%w: status txid: %w", ErrInvalidResponse, err)
	}
	receipts := make([]tx.Receipt, 0, len(w.Receipts))
	for _, wr := range w.Receipts {
		r, err := decodeReceipt(wr)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}
	return &ExecutionStatus{
		TxID:     txid,
		State:    CommitState(w.State),
		Reason:   w.Reason,
		Receipts: receipts,
	}, nil
}

// --- Service implementation ------------------------------------------

// GetSpendableResources implements Service.
func (c *Client) GetSpendableResources(ctx context.Context, filter ResourceFilter) ([]tx.Resource, error) {
	wf := wireFilter{
		Owner:       filter.Owner.Hex(),
		AssetID:     filter.AssetID.Hex(),
		Amount:      filter.Amount,
		ExcludedIDs: filter.ExcludedIDs,
		Cursor:      filter.Cursor,
	}
	var raw []wireResource
	if err := c.rpc.Call(ctx, "ember_spendableResources", []any{wf}, &raw); err != nil {
		return nil, err
	}

	resources := make([]tx.Resource, 0, len(raw))
	for _, wr := range raw {
		switch wr.Type {
		case "coin":
			if wr.Coin == nil {
				return nil, fmt.Errorf("%w: coin resource without body", ErrInvalidResponse)
			}
			coin, err := decodeCoin(*wr.Coin)
			if err != nil {
				return nil, err
			}
			resources = append(resources, coin)
		case "message":
			if wr.Message == nil {
				return nil, fmt.Errorf("%w: message resource without body", ErrInvalidResponse)
			}
			msg, err := decodeMessage(*wr.Message)
			if err != nil {
				return nil, err
			}
			resources = append(resources, msg)
		default:
			return nil, fmt.Errorf("%w: unknown resource type %q", ErrInvalidResponse, wr.Type)
		}
	}
	return resources, nil
}

// EstimateFee implements Service: dry-runs the draft at gasPrice and
// reports the required fee.
func (c *Client) EstimateFee(ctx context.Context, draft []byte, gasPrice uint64) (uint64, error) {
	var result struct {
		Fee uint64 `json:"fee"`
	}
	params := []any{hex.EncodeToString(draft), gasPrice}
	if err := c.rpc.Call(ctx, "ember_estimateFee", params, &result); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEstimationFailed, err)
	}
	return result.Fee, nil
}

// ChainID implements Service. The id is fetched once and cached.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.haveID {
		return c.chainID, nil
	}
	var result struct {
		ChainID uint64 `json:"chain_id"`
	}
	if err := c.rpc.Call(ctx, "ember_chainId", nil, &result); err != nil {
		return 0, err
	}
	c.chainID = result.ChainID
	c.haveID = true
	return c.chainID, nil
}

// SubmitAndAwaitCommit implements Service: submits the transaction and
// polls its status until the node reports a terminal state. The node's
// rejection reason is surfaced verbatim under ErrSubmissionRejected.
func (c *Client) SubmitAndAwaitCommit(ctx context.Context, t *tx.Transaction) (*ExecutionStatus, error) {
	var submitted struct {
		TxID string `json:"txid"`
	}
	params := []any{hex.EncodeToString(t.Bytes())}
	if err := c.rpc.Call(ctx, "ember_submitTransaction", params, &submitted); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionRejected, err)
	}

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()

	for {
		var ws wireStatus
		if err := c.rpc.Call(ctx, "ember_transactionStatus", []any{submitted.TxID}, &ws); err != nil {
			return nil, err
		}
		if ws.State != "pending" {
			return decodeStatus(ws)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// GetCoins implements Service.
func (c *Client) GetCoins(ctx context.Context, owner tx.Address, asset tx.AssetID) ([]tx.Coin, error) {
	var raw []wireCoin
	params := []any{owner.Hex(), asset.Hex()}
	if err := c.rpc.Call(ctx, "ember_coins", params, &raw); err != nil {
		return nil, err
	}
	coins := make([]tx.Coin, 0, len(raw))
	for _, wc := range raw {
		coin, err := decodeCoin(wc)
		if err != nil {
			return nil, err
		}
		coins = append(coins, coin)
	}
	return coins, nil
}

// GetMessages implements Service.
func (c *Client) GetMessages(ctx context.Context, owner tx.Address) ([]tx.Message, error) {
	var raw []wireMessage
	if err := c.rpc.Call(ctx, "ember_messages", []any{owner.Hex()}, &raw); err != nil {
		return nil, err
	}
	msgs := make([]tx.Message, 0, len(raw))
	for _, wm := range raw {
		msg, err := decodeMessage(wm)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// GetAssetBalance implements Service.
func (c *Client) GetAssetBalance(ctx context.Context, owner tx.Address, asset tx.AssetID) (uint64, error) {
	var result struct {
		Balance uint64 `json:"balance"`
	}
	params := []any{owner.Hex(), asset.Hex()}
	if err := c.rpc.Call(ctx, "ember_assetBalance", params, &result); err != nil {
		return 0, err
	}
	return result.Balance, nil
}

// GetBalances implements Service.
func (c *Client) GetBalances(ctx context.Context, owner tx.Address) (map[tx.AssetID]uint64, error) {
	var raw map[string]uint64
	if err := c.rpc.Call(ctx, "ember_balances", []any{owner.Hex()}, &raw); err != nil {
		return nil, err
	}
	balances := make(map[tx.AssetID]uint64, len(raw))
	for assetHex, amount := range raw {
		asset, err := tx.AssetIDFromHex(assetHex)
		if err != nil {
			return nil, fmt.Errorf("%w: balance asset: %w", ErrInvalidResponse, err)
		}
		balances[asset] = amount
	}
	return balances, nil
}

// GetTransactionsByOwner implements Service.
func (c *Client) GetTransactionsByOwner(ctx context.Context, owner tx.Address, page PaginationRequest) (*PaginatedTransactions, error) {
	var raw struct {
		Results []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Time   int64  `json:"time"`
		} `json:"results"`
		Cursor  string `json:"cursor"`
		HasNext bool   `json:"has_next"`
	}
	params := []any{owner.Hex(), page}
	if err := c.rpc.Call(ctx, "ember_transactionsByOwner", params, &raw); err != nil {
		return nil, err
	}

	out := &PaginatedTransactions{Cursor: raw.Cursor, HasNext: raw.HasNext}
	for _, r := range raw.Results {
		id, err := tx.TxIDFromHex(r.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction id: %w", ErrInvalidResponse, err)
		}
		out.Results = append(out.Results, TransactionResponse{
			ID:     id,
			Status: CommitState(r.Status),
			Time:   r.Time,
		})
	}
	return out, nil
}
