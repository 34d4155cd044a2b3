// internal/tron/trc20.go
package tron

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	selectorTransfer  = "transfer(address,uint256)"
	selectorBalanceOf = "balanceOf(address)"
	selectorDecimals  = "decimals()"
)

var (
	addressType, _ = abi.NewType("address", "", nil)
	uint256Type, _ = abi.NewType("uint256", "", nil)

	transferArgs  = abi.Arguments{{Type: addressType}, {Type: uint256Type}}
	balanceOfArgs = abi.Arguments{{Type: addressType}}
)

// TRC20 is a resolved token contract handle bound to a client. It
// satisfies exchange.TokenContract.
type TRC20 struct {
	client  *Client
	address string
}

// Address returns the contract's base58check address.
func (tok *TRC20) Address() string {
	return tok.address
}

func (tok *TRC20) Decimals(ctx context.Context) (int, error) {
	value, err := tok.client.constantCall(ctx, tok.address, selectorDecimals, "")
	if err != nil {
		return 0, fmt.Errorf("decimals: %w", err)
	}
	return int(value.Int64()), nil
}

func (tok *TRC20) BalanceOf(ctx context.Context, address string) (*big.Int, error) {
	param, err := packBalanceOf(address)
	if err != nil {
		return nil, fmt.Errorf("balanceOf: %w", err)
	}
	value, err := tok.client.constantCall(ctx, tok.address, selectorBalanceOf, param)
	if err != nil {
		return nil, fmt.Errorf("balanceOf: %w", err)
	}
	return value, nil
}

func (tok *TRC20) Transfer(ctx context.Context, to string, amount *big.Int) (string, error) {
	param, err := packTransfer(to, amount)
	if err != nil {
		return "", fmt.Errorf("transfer: %w", err)
	}
	txid, err := tok.client.trigger(ctx, tok.address, selectorTransfer, param)
	if err != nil {
		return "", fmt.Errorf("transfer: %w", err)
	}
	return txid, nil
}

func packTransfer(to string, amount *big.Int) (string, error) {
	account, err := AccountOf(to)
	if err != nil {
		return "", err
	}
	packed, err := transferArgs.Pack(account, amount)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(packed), nil
}

func packBalanceOf(owner string) (string, error) {
	account, err := AccountOf(owner)
	if err != nil {
		return "", err
	}
	packed, err := balanceOfArgs.Pack(account)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(packed), nil
}
