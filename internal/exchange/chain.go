// internal/exchange/chain.go
package exchange

import (
	"context"
	"math/big"
)

// ChainClient is the blockchain capability the swapper runs against.
// The production implementation lives in internal/tron; tests swap in
// a mock without touching the orchestration logic.
type ChainClient interface {
	// ValidateAddress checks an address against the connected node.
	ValidateAddress(ctx context.Context, address string) (bool, error)

	// ResolveTRC20 returns a handle for the token contract at the
	// given address.
	ResolveTRC20(ctx context.Context, tokenAddress string) (TokenContract, error)

	// TransferTRX submits a native transfer and returns its txid.
	TransferTRX(ctx context.Context, from, to string, amount float64) (string, error)

	// WaitForReceipt blocks until the transaction is confirmed, the
	// configured timeout elapses, or ctx is cancelled.
	WaitForReceipt(ctx context.Context, txid string) error
}

// TokenContract is a resolved TRC20 contract handle.
type TokenContract interface {
	Decimals(ctx context.Context) (int, error)
	BalanceOf(ctx context.Context, address string) (*big.Int, error)

	// Transfer submits a token transfer in base units and returns its txid.
	Transfer(ctx context.Context, to string, amount *big.Int) (string, error)
}
