package main

// Notes:
// - Real signal delivery is not exercised; only context wiring is.

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("live until stopped", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		if ctx.Err() != nil {
			t.Fatalf("ctx.Err() = %v before stop, want nil", ctx.Err())
		}
		stop()
		if ctx.Err() == nil {
			t.Fatal("ctx.Err() = nil after stop, want canceled")
		}
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()
		<-ctx.Done()
	})

	t.Run("canceled run maps to general exit code", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		stop()

		if got := exitCodeFor(ctx.Err()); got != ExitGeneral {
			t.Errorf("exitCodeFor(ctx.Err()) = %d, want %d", got, ExitGeneral)
		}
	})
}
