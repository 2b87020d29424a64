package timer

import (
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Ticker paces automatic stepping. It starts paused, emits on tickCh every interval while
// started, and returns when action is closed. A tick the consumer is not ready for is dropped.
func Ticker(interval time.Duration, tickCh chan<- bool, action <-chan TimerAction) {
	ticker := time.NewTicker(interval)
	ticker.Stop()
	defer ticker.Stop()

	for {
		select {
		case a, ok := <-action:
			if !ok {
				return
			}
			switch a {
			case Start:
				resetTicker(ticker, interval)
				slog.Debug("Auto-step started", "interval", interval)
			case Stop:
				ticker.Stop()
				slog.Debug("Auto-step paused")
			}
		case <-ticker.C:
			select {
			case tickCh <- true:
			default:
				slog.Debug("Tick dropped, consumer busy")
			}
		}
	}
}

// Stops the ticker, discards a pending tick and restarts it.
func resetTicker(t *time.Ticker, interval time.Duration) {
	t.Stop()
	select {
	case <-t.C:
	default:
	}
	t.Reset(interval)
}
