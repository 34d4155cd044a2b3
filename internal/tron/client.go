// internal/tron/client.go
package tron

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/rmagomedov/tron-exchange-bot/internal/exchange"
)

// Default client tuning.
const (
	DefaultTimeout        = 30 * time.Second
	DefaultFeeLimit       = 10_000_000 // sun
	DefaultConfirmTimeout = 60 * time.Second
	DefaultPollInterval   = 3 * time.Second

	sunPerTRX = 1_000_000
)

// Client talks to a TRON full node over its HTTP API and implements
// exchange.ChainClient. State-changing calls are signed locally and
// broadcast; nothing is retried except the confirmation poll, which
// runs until the node reports the transaction or the confirm timeout
// elapses.
type Client struct {
	endpoint       string
	http           *http.Client
	signer         *Signer
	feeLimit       int64
	confirmTimeout time.Duration
	pollInterval   time.Duration
	logger         *zap.Logger
}

var _ exchange.ChainClient = (*Client)(nil)

// ClientOption configures Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithFeeLimit sets the fee limit in sun for contract calls.
func WithFeeLimit(limit int64) ClientOption {
	return func(c *Client) { c.feeLimit = limit }
}

// WithConfirmTimeout bounds how long WaitForReceipt polls.
func WithConfirmTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.confirmTimeout = d }
}

// WithPollInterval sets the initial confirmation poll interval.
func WithPollInterval(d time.Duration) ClientOption {
	return func(c *Client) { c.pollInterval = d }
}

func NewClient(endpoint string, signer *Signer, logger *zap.Logger, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:       strings.TrimRight(endpoint, "/"),
		http:           &http.Client{Timeout: DefaultTimeout},
		signer:         signer,
		feeLimit:       DefaultFeeLimit,
		confirmTimeout: DefaultConfirmTimeout,
		pollInterval:   DefaultPollInterval,
		logger:         logger.Named("tron"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateAddress asks the node whether an address is well-formed.
func (c *Client) ValidateAddress(ctx context.Context, address string) (bool, error) {
	var res validateAddressResponse
	err := c.post(ctx, "wallet/validateaddress", map[string]string{"address": address}, &res)
	if err != nil {
		return false, err
	}
	return res.Result, nil
}

// ResolveTRC20 checks that a contract is deployed at the token address
// and returns a handle for it.
func (c *Client) ResolveTRC20(ctx context.Context, tokenAddress string) (exchange.TokenContract, error) {
	hexAddr, err := AddressToHex(tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("token address: %w", err)
	}
	var res contractResponse
	if err := c.post(ctx, "wallet/getcontract", map[string]string{"value": hexAddr}, &res); err != nil {
		return nil, err
	}
	if res.ContractAddress == "" {
		return nil, fmt.Errorf("no contract deployed at %s", tokenAddress)
	}
	return &TRC20{client: c, address: tokenAddress}, nil
}

// TransferTRX submits a native transfer. The amount is given in TRX
// and converted to sun, truncating sub-sun precision.
func (c *Client) TransferTRX(ctx context.Context, from, to string, amount float64) (string, error) {
	fromHex, err := AddressToHex(from)
	if err != nil {
		return "", fmt.Errorf("from address: %w", err)
	}
	toHex, err := AddressToHex(to)
	if err != nil {
		return "", fmt.Errorf("to address: %w", err)
	}

	body := map[string]interface{}{
		"owner_address": fromHex,
		"to_address":    toHex,
		"amount":        int64(amount * sunPerTRX),
	}
	var tx rawTransaction
	if err := c.post(ctx, "wallet/createtransaction", body, &tx); err != nil {
		return "", err
	}
	if tx.Error != "" {
		return "", fmt.Errorf("create transaction: %s", tx.Error)
	}
	if tx.TxID == "" {
		return "", fmt.Errorf("create transaction: node returned no txID")
	}
	return c.signAndBroadcast(ctx, &tx)
}

// WaitForReceipt polls the node until the transaction is included in a
// block. A transaction that executed with a non-success receipt fails
// immediately; an unknown transaction is polled until the confirm
// timeout elapses.
func (c *Client) WaitForReceipt(ctx context.Context, txid string) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.pollInterval

	operation := func() (struct{}, error) {
		var info transactionInfo
		if err := c.post(ctx, "wallet/gettransactioninfobyid", map[string]string{"value": txid}, &info); err != nil {
			return struct{}{}, err
		}
		if info.ID == "" {
			return struct{}{}, fmt.Errorf("transaction %s not yet confirmed", txid)
		}
		if info.Receipt.Result != "" && info.Receipt.Result != "SUCCESS" {
			return struct{}{}, backoff.Permanent(fmt.Errorf("transaction %s failed: %s", txid, info.Receipt.Result))
		}
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxElapsedTime(c.confirmTimeout))
	if err != nil {
		return fmt.Errorf("wait for receipt: %w", err)
	}

	c.logger.Debug("Transaction confirmed", zap.String("txid", txid))
	return nil
}

// constantCall runs a read-only contract call and returns the first
// result word as a big integer.
func (c *Client) constantCall(ctx context.Context, contract, selector, parameter string) (*big.Int, error) {
	req, err := c.triggerRequest(contract, selector, parameter, 0)
	if err != nil {
		return nil, err
	}
	var res constantCallResponse
	if err := c.post(ctx, "wallet/triggerconstantcontract", req, &res); err != nil {
		return nil, err
	}
	if !res.Result.Result {
		return nil, fmt.Errorf("constant call %s rejected: %s", selector, decodeNodeMessage(res.Result.Message))
	}
	if len(res.ConstantResult) == 0 || res.ConstantResult[0] == "" {
		return big.NewInt(0), nil
	}
	value, ok := new(big.Int).SetString(res.ConstantResult[0], 16)
	if !ok {
		return nil, fmt.Errorf("constant call %s: unparseable result %q", selector, res.ConstantResult[0])
	}
	return value, nil
}

// trigger runs a state-changing contract call: build, sign, broadcast.
func (c *Client) trigger(ctx context.Context, contract, selector, parameter string) (string, error) {
	req, err := c.triggerRequest(contract, selector, parameter, c.feeLimit)
	if err != nil {
		return "", err
	}
	var res triggerResponse
	if err := c.post(ctx, "wallet/triggersmartcontract", req, &res); err != nil {
		return "", err
	}
	if !res.Result.Result {
		return "", fmt.Errorf("contract call %s rejected: %s", selector, decodeNodeMessage(res.Result.Message))
	}
	return c.signAndBroadcast(ctx, &res.Transaction)
}

func (c *Client) triggerRequest(contract, selector, parameter string, feeLimit int64) (*triggerRequest, error) {
	contractHex, err := AddressToHex(contract)
	if err != nil {
		return nil, fmt.Errorf("contract address: %w", err)
	}
	ownerHex, err := AddressToHex(c.signer.Address())
	if err != nil {
		return nil, fmt.Errorf("owner address: %w", err)
	}
	return &triggerRequest{
		OwnerAddress:     ownerHex,
		ContractAddress:  contractHex,
		FunctionSelector: selector,
		Parameter:        parameter,
		FeeLimit:         feeLimit,
	}, nil
}

func (c *Client) signAndBroadcast(ctx context.Context, tx *rawTransaction) (string, error) {
	sig, err := c.signer.SignRawData(tx.RawDataHex)
	if err != nil {
		return "", err
	}
	tx.Signature = []string{sig}

	var res broadcastResponse
	if err := c.post(ctx, "wallet/broadcasttransaction", tx, &res); err != nil {
		return "", err
	}
	if !res.Result {
		return "", fmt.Errorf("broadcast rejected: %s %s", res.Code, decodeNodeMessage(res.Message))
	}

	c.logger.Info("📡 Transaction broadcast", zap.String("txid", tx.TxID))
	return tx.TxID, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	url := c.endpoint + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call %s: status %d: %s", path, resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// decodeNodeMessage decodes the hex-encoded message field the node
// attaches to rejections. Unparseable messages are returned verbatim.
func decodeNodeMessage(message string) string {
	decoded, err := hex.DecodeString(message)
	if err != nil || len(decoded) == 0 {
		return message
	}
	return string(decoded)
}
