package zhconv

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogf/gf/v2/os/gctx"
)

func TestGate_ActivatesExactlyOnce(t *testing.T) {
	ctx := gctx.New()
	var ready atomic.Bool
	var fired atomic.Int32

	gate := NewGate(ready.Load, 10*time.Millisecond, 0)
	gate.Start(ctx, func() { fired.Add(1) })

	time.Sleep(40 * time.Millisecond)
	if gate.State() != StateWaiting {
		t.Fatalf("state = %v before readiness", gate.State())
	}
	if fired.Load() != 0 {
		t.Fatal("callback fired before readiness")
	}

	ready.Store(true)
	time.Sleep(100 * time.Millisecond)

	if gate.State() != StateActive {
		t.Fatalf("state = %v after readiness", gate.State())
	}
	if got := fired.Load(); got != 1 {
		t.Fatalf("callback fired %d times, want 1", got)
	}
}

func TestGate_NeverReadyKeepsWaiting(t *testing.T) {
	ctx := gctx.New()
	var fired atomic.Int32

	gate := NewGate(func() bool { return false }, 10*time.Millisecond, 0)
	gate.Start(ctx, func() { fired.Add(1) })

	time.Sleep(120 * time.Millisecond)

	if gate.State() != StateWaiting {
		t.Fatalf("state = %v, want waiting", gate.State())
	}
	if fired.Load() != 0 {
		t.Fatal("callback fired without readiness")
	}
}

func TestGate_TimeoutEntersTerminalState(t *testing.T) {
	reset()
	defer reset()
	ctx := gctx.New()
	var fired atomic.Int32

	gate := NewGate(func() bool { return false }, 10*time.Millisecond, 30*time.Millisecond)
	gate.Start(ctx, func() { fired.Add(1) })

	time.Sleep(120 * time.Millisecond)

	if gate.State() != StateUnavailable {
		t.Fatalf("state = %v, want unavailable", gate.State())
	}
	if fired.Load() != 0 {
		t.Fatal("callback fired after timeout")
	}
	// 终态之后注册被忽略,拦截层保持未启用
	Register(fakeConverter{})
	if Ready() {
		t.Fatal("converter registered after timeout")
	}
}
