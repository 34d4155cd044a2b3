// internal/bot/replies.go
package bot

import "strconv"

// Reply texts. Every failure kind maps to exactly one of these.
const (
	replyWelcome = "Welcome to our bot!\n\n" +
		"Use /sendusdt command to send USDT to a specified address and receive the corresponding TRX.\n\n" +
		"Use /setrate command to set the exchange rate between USDT and TRX."

	replyUnknownCommand = "Unknown command. Use /start command to see available commands."

	replyNotAdmin     = "Not logged in as Admin."
	replySetRateUsage = "Invalid command format. Use /setrate rate to set the exchange rate"
	replyRateNaN      = "Exchange rate must be a number."
	replyRateUpdated  = "Exchange rate between USDT and TRX has been updated to %s."

	replySendUSDTUsage = "Invalid command format. Use /sendusdt address amount to send USDT to the specified address, " +
		"where address is the TRC20 address and amount is the amount of USDT."
	replyAmountNaN = "Amount must be a number."

	replyPayoutCapExceeded   = "Can only send up to %s TRX at a time."
	replyInvalidAddress      = "Invalid TRC20 address."
	replyContractUnavailable = "Failed to get TRC20 interface."
	replyDecimalsUnavailable = "Failed to get USDT decimals."
	replyBalanceUnavailable  = "Failed to get user's USDT balance."
	replyInsufficientBalance = "Insufficient USDT balance."
	replyTransferSubmit      = "Failed to send USDT."
	replyTransferConfirm     = "Failed to confirm USDT transaction."
	replyPayoutSubmit        = "Failed to send TRX."
	replyPayoutConfirm       = "Failed to confirm TRX transaction."

	replySwapDone = "USDT transaction successful. %s USDT sent to address %s. " +
		"TRX transaction successful. %s TRX sent to address %s."
)

// formatAmount renders float amounts without trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
