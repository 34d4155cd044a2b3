// internal/bot/dispatcher.go
package bot

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/rmagomedov/tron-exchange-bot/internal/command"
	"github.com/rmagomedov/tron-exchange-bot/internal/exchange"
)

// Dispatcher routes parsed commands to their handlers and turns
// outcomes into reply text. Every inbound message produces exactly
// one reply; nothing here can crash the process.
type Dispatcher struct {
	settings *exchange.Settings
	swapper  *exchange.Swapper
	adminID  int64
	payoutTo string
	logger   *zap.Logger
}

// DispatcherConfig configuration for Dispatcher.
type DispatcherConfig struct {
	Settings          *exchange.Settings
	Swapper           *exchange.Swapper
	AdminID           int64
	PayoutDestination string
	Logger            *zap.Logger
}

func NewDispatcher(cfg *DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		settings: cfg.Settings,
		swapper:  cfg.Swapper,
		adminID:  cfg.AdminID,
		payoutTo: cfg.PayoutDestination,
		logger:   cfg.Logger.Named("dispatcher"),
	}
}

// Handle processes one inbound message and returns the reply text.
func (d *Dispatcher) Handle(ctx context.Context, senderID int64, text string) string {
	cmd, args := command.Parse(text)

	d.logger.Debug("📨 Command received",
		zap.String("command", cmd),
		zap.Int("args", len(args)),
		zap.Int64("sender", senderID))

	switch cmd {
	case "/start":
		return replyWelcome
	case "/setrate":
		return d.handleSetRate(senderID, args)
	case "/sendusdt":
		return d.handleSendUSDT(ctx, senderID, args)
	default:
		return replyUnknownCommand
	}
}

func (d *Dispatcher) handleSetRate(senderID int64, args []string) string {
	if senderID != d.adminID {
		d.logger.Warn("Unauthorized /setrate", zap.Int64("sender", senderID))
		return replyNotAdmin
	}
	if len(args) != 1 {
		return replySetRateUsage
	}
	rate, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return replyRateNaN
	}

	d.settings.SetRate(rate)
	d.logger.Info("⚙️ Conversion rate updated", zap.Float64("rate", rate))
	return fmt.Sprintf(replyRateUpdated, formatAmount(rate))
}

func (d *Dispatcher) handleSendUSDT(ctx context.Context, senderID int64, args []string) string {
	if len(args) != 2 {
		return replySendUSDTUsage
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return replyAmountNaN
	}

	outcome := d.swapper.Execute(ctx, exchange.Request{
		Requester:   senderID,
		Destination: args[0],
		USDTAmount:  amount,
	})
	return d.renderOutcome(outcome)
}

func (d *Dispatcher) renderOutcome(outcome exchange.Outcome) string {
	if outcome.OK {
		return fmt.Sprintf(replySwapDone,
			formatAmount(outcome.USDTSent),
			outcome.Destination,
			formatAmount(outcome.TRXSent),
			d.payoutTo)
	}

	switch outcome.Failure {
	case exchange.FailPayoutCapExceeded:
		return fmt.Sprintf(replyPayoutCapExceeded, formatAmount(d.settings.MaxTRXPerSwap()))
	case exchange.FailInvalidAddress:
		return replyInvalidAddress
	case exchange.FailContractUnavailable:
		return replyContractUnavailable
	case exchange.FailDecimalsUnavailable:
		return replyDecimalsUnavailable
	case exchange.FailBalanceUnavailable:
		return replyBalanceUnavailable
	case exchange.FailInsufficientBalance:
		return replyInsufficientBalance
	case exchange.FailTransferSubmit:
		return replyTransferSubmit
	case exchange.FailTransferConfirm:
		return replyTransferConfirm
	case exchange.FailPayoutSubmit:
		return replyPayoutSubmit
	case exchange.FailPayoutConfirm:
		return replyPayoutConfirm
	default:
		return replyUnknownCommand
	}
}
