// internal/exchange/outcome.go
package exchange

// FailureKind enumerates the ways a swap can fail. Each kind maps to
// exactly one user-facing reply in the bot layer.
type FailureKind int

const (
	FailNone FailureKind = iota
	FailPayoutCapExceeded
	FailInvalidAddress
	FailContractUnavailable
	FailDecimalsUnavailable
	FailBalanceUnavailable
	FailInsufficientBalance
	FailTransferSubmit
	FailTransferConfirm
	FailPayoutSubmit
	FailPayoutConfirm
)

var failureNames = map[FailureKind]string{
	FailNone:                "none",
	FailPayoutCapExceeded:   "payout_cap_exceeded",
	FailInvalidAddress:      "invalid_address",
	FailContractUnavailable: "contract_unavailable",
	FailDecimalsUnavailable: "decimals_unavailable",
	FailBalanceUnavailable:  "balance_unavailable",
	FailInsufficientBalance: "insufficient_balance",
	FailTransferSubmit:      "transfer_submit_failed",
	FailTransferConfirm:     "transfer_confirm_failed",
	FailPayoutSubmit:        "payout_submit_failed",
	FailPayoutConfirm:       "payout_confirm_failed",
}

func (k FailureKind) String() string {
	if name, ok := failureNames[k]; ok {
		return name
	}
	return "unknown"
}

// Request describes one swap invocation. It is built from parsed
// command arguments and never persisted.
type Request struct {
	Requester   int64
	Destination string
	USDTAmount  float64
}

// Outcome is the result of one swap attempt. Exactly one of OK or
// Failure is meaningful; Err carries the underlying chain error for
// logging and is never shown to the user.
type Outcome struct {
	OK          bool
	Failure     FailureKind
	Err         error
	USDTSent    float64
	TRXSent     float64
	Destination string
}

func success(usdt, trx float64, destination string) Outcome {
	return Outcome{
		OK:          true,
		USDTSent:    usdt,
		TRXSent:     trx,
		Destination: destination,
	}
}

func failed(kind FailureKind, err error) Outcome {
	return Outcome{Failure: kind, Err: err}
}
