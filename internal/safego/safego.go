// Package safego wraps goroutine launches with panic recovery.
package safego

import "log/slog"

// Go runs fn in a new goroutine, recovering and logging any panic instead
// of letting it take down the process. Long-lived background loops like the
// metrics collectors go through here so a panic in one of them surfaces in
// the logs rather than dying silently.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered panic in background goroutine", "panic", r)
			}
		}()
		fn()
	}()
}
