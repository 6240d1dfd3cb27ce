package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// RPCClient is a JSON-RPC 2.0 client for communicating with Ember nodes.
// It handles request serialization, authentication, and response
// parsing. All high-level node methods are built on top of Call.
type RPCClient struct {
	url    string
	user   string
	pass   string
	client *http.Client
	log    *zap.Logger
	nextID atomic.Int64
}

// rpcRequest represents a JSON-RPC 2.0 request payload.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// rpcResponse represents a JSON-RPC 2.0 response payload.
type rpcResponse struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// rpcError represents an error returned by the JSON-RPC server.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RPCOption configures an RPCClient.
type RPCOption func(*RPCClient)

// WithLogger attaches a structured logger to the client. The default is
// a no-op logger.
func WithLogger(log *zap.Logger) RPCOption {
	return func(c *RPCClient) { c.log = log }
}

// NewRPCClient creates a new JSON-RPC client with the given connection
// config. The client uses HTTP Basic Auth when User is non-empty and
// maintains a connection pool for reuse.
func NewRPCClient(cfg Config, opts ...RPCOption) *RPCClient {
	c := &RPCClient{
		url:  cfg.URL,
		user: cfg.User,
		pass: cfg.Password,
		log:  zap.NewNop(),
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call invokes a JSON-RPC method on the Ember node. It serializes the
// request, sends it with optional Basic Auth, and deserializes the
// response into result.
//
// If result is nil, the response result is discarded. Call returns
// ErrConnectionFailed if the HTTP request fails and ErrInvalidResponse
// if the response cannot be decoded. RPC-level errors are returned as
// plain errors carrying the server's code and message.
func (c *RPCClient) Call(ctx context.Context, method string, params, result any) error {
	reqBody := rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("provider: marshal request: %w", err)
	}

	c.log.Debug("rpc call", zap.String("method", method), zap.Int64("id", reqBody.ID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("provider: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" {
		req.SetBasicAuth(c.user, c.pass)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: HTTP %d: %s", ErrConnectionFailed, resp.StatusCode, string(respBody))
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrInvalidResponse, err)
	}

	if rpcResp.ID != reqBody.ID {
		return fmt.Errorf("%w: response ID mismatch: expected %d, got %d",
			ErrInvalidResponse, reqBody.ID, rpcResp.ID)
	}

	if rpcResp.Error != nil {
		c.log.Debug("rpc error", zap.String("method", method),
			zap.Int("code", rpcResp.Error.Code), zap.String("message", rpcResp.Error.Message))
		return fmt.Errorf("provider: rpc error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if result != nil && rpcResp.Result != nil {
		if err := json.Unmarshal(rpcResp.Result, result); err != nil {
			return fmt.Errorf("%w: unmarshal result: %w", ErrInvalidResponse, err)
		}
	}

	return nil
}
