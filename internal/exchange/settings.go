// internal/exchange/settings.go
package exchange

import (
	"math"
	"sync"
)

// Settings holds the mutable exchange parameters shared between the
// command dispatcher and the swap path. Only the conversion rate is
// mutated after startup (by the /setrate handler); the transport
// delivers messages on its own goroutine, so access is guarded.
type Settings struct {
	mu            sync.RWMutex
	rate          float64
	decimalLimit  int
	maxTRXPerSwap float64
}

func NewSettings(rate float64, decimalLimit int, maxTRXPerSwap float64) *Settings {
	return &Settings{
		rate:          rate,
		decimalLimit:  decimalLimit,
		maxTRXPerSwap: maxTRXPerSwap,
	}
}

// Rate returns the current USDT→TRX conversion rate.
func (s *Settings) Rate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rate
}

// SetRate replaces the conversion rate unconditionally. Authorization
// and parsing happen in the dispatcher before this is reached.
func (s *Settings) SetRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rate = rate
}

// DecimalLimit returns the number of fractional digits kept when
// computing a TRX payout.
func (s *Settings) DecimalLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decimalLimit
}

// MaxTRXPerSwap returns the hard cap on a single payout.
func (s *Settings) MaxTRXPerSwap() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxTRXPerSwap
}

// ConvertToTRX computes the TRX payout for a USDT amount: the scaled
// product is floored, so the result is truncated toward zero at the
// decimal limit and never rounds up.
func (s *Settings) ConvertToTRX(usdt float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scale := math.Pow(10, float64(s.decimalLimit))
	return math.Floor(usdt*s.rate*scale) / scale
}
