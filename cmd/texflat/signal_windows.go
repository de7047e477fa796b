//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext cancels the flattening run on interrupt.
// syscall.SIGTERM does not exist on Windows.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
