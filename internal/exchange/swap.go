// internal/exchange/swap.go
package exchange

import (
	"context"
	"math"
	"math/big"

	"go.uber.org/zap"
)

// Swapper runs the two-phase transfer protocol: send USDT to the
// requested address, wait for confirmation, then pay out TRX from the
// payout source to the payout destination. Steps run strictly in order
// and stop at the first failure. A completed step is never compensated:
// if the payout fails after the token transfer confirmed, the token
// transfer stands. There is also no automatic retry of any step; a
// retry after a lost confirmation could double-spend the payout.
type Swapper struct {
	chain        ChainClient
	settings     *Settings
	tokenAddress string
	payoutFrom   string
	payoutTo     string
	logger       *zap.Logger
}

// SwapperConfig configuration for Swapper.
type SwapperConfig struct {
	Chain        ChainClient
	Settings     *Settings
	TokenAddress string
	PayoutFrom   string
	PayoutTo     string
	Logger       *zap.Logger
}

func NewSwapper(cfg *SwapperConfig) *Swapper {
	return &Swapper{
		chain:        cfg.Chain,
		settings:     cfg.Settings,
		tokenAddress: cfg.TokenAddress,
		payoutFrom:   cfg.PayoutFrom,
		payoutTo:     cfg.PayoutTo,
		logger:       cfg.Logger.Named("swapper"),
	}
}

// Execute runs one swap. Chain errors are converted into failure
// outcomes here and never propagate to the caller.
func (s *Swapper) Execute(ctx context.Context, req Request) Outcome {
	trxAmount := s.settings.ConvertToTRX(req.USDTAmount)

	s.logger.Info("💱 Swap requested",
		zap.Int64("requester", req.Requester),
		zap.String("destination", req.Destination),
		zap.Float64("usdt", req.USDTAmount),
		zap.Float64("trx", trxAmount))

	if maxTRX := s.settings.MaxTRXPerSwap(); trxAmount > maxTRX {
		s.logger.Warn("Payout cap exceeded",
			zap.Float64("trx", trxAmount),
			zap.Float64("cap", maxTRX))
		return failed(FailPayoutCapExceeded, nil)
	}

	valid, err := s.chain.ValidateAddress(ctx, req.Destination)
	if err != nil || !valid {
		return s.fail(FailInvalidAddress, err)
	}

	token, err := s.chain.ResolveTRC20(ctx, s.tokenAddress)
	if err != nil {
		return s.fail(FailContractUnavailable, err)
	}

	decimals, err := token.Decimals(ctx)
	if err != nil {
		return s.fail(FailDecimalsUnavailable, err)
	}

	amountUnits := tokenUnits(req.USDTAmount, decimals)

	balance, err := token.BalanceOf(ctx, req.Destination)
	if err != nil {
		return s.fail(FailBalanceUnavailable, err)
	}
	if balance.Cmp(amountUnits) < 0 {
		s.logger.Warn("Insufficient token balance",
			zap.String("address", req.Destination),
			zap.String("balance", balance.String()),
			zap.String("required", amountUnits.String()))
		return failed(FailInsufficientBalance, nil)
	}

	tokenTx, err := token.Transfer(ctx, req.Destination, amountUnits)
	if err != nil {
		return s.fail(FailTransferSubmit, err)
	}
	s.logger.Info("📤 Token transfer submitted", zap.String("txid", tokenTx))

	if err := s.chain.WaitForReceipt(ctx, tokenTx); err != nil {
		return s.fail(FailTransferConfirm, err)
	}

	payoutTx, err := s.chain.TransferTRX(ctx, s.payoutFrom, s.payoutTo, trxAmount)
	if err != nil {
		return s.fail(FailPayoutSubmit, err)
	}
	s.logger.Info("📤 Payout submitted", zap.String("txid", payoutTx))

	if err := s.chain.WaitForReceipt(ctx, payoutTx); err != nil {
		return s.fail(FailPayoutConfirm, err)
	}

	s.logger.Info("✅ Swap completed",
		zap.Float64("usdt", req.USDTAmount),
		zap.Float64("trx", trxAmount),
		zap.String("destination", req.Destination))

	return success(req.USDTAmount, trxAmount, req.Destination)
}

func (s *Swapper) fail(kind FailureKind, err error) Outcome {
	s.logger.Warn("Swap failed",
		zap.String("reason", kind.String()),
		zap.Error(err))
	return failed(kind, err)
}

// tokenUnits converts a human token amount into contract base units,
// truncating toward zero.
func tokenUnits(amount float64, decimals int) *big.Int {
	scaled := new(big.Float).Mul(
		big.NewFloat(amount),
		big.NewFloat(math.Pow(10, float64(decimals))),
	)
	units, _ := scaled.Int(nil)
	return units
}
