package trigger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFireRunsEveryListener(t *testing.T) {
	src := NewSource("summarizeBtn", newTestLogger())
	var calls atomic.Int32
	src.Register("a", func(context.Context) error { calls.Add(1); return nil })
	src.Register("b", func(context.Context) error { calls.Add(1); return nil })

	inv := src.Fire(context.Background())
	require.NoError(t, src.Wait(waitCtx(t)))

	require.Equal(t, int32(2), calls.Load())
	require.Equal(t, "summarizeBtn", inv.Source)
	require.NotEqual(t, inv.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestFireIsNotDeduplicated(t *testing.T) {
	src := NewSource("btn", newTestLogger())
	var calls atomic.Int32
	src.Register("count", func(context.Context) error { calls.Add(1); return nil })

	first := src.Fire(context.Background())
	second := src.Fire(context.Background())
	require.NoError(t, src.Wait(waitCtx(t)))

	require.Equal(t, int32(2), calls.Load())
	require.NotEqual(t, first.ID, second.ID)
}

func TestFailuresReachSink(t *testing.T) {
	src := NewSource("btn", newTestLogger())
	boom := errors.New("boom")
	src.Register("failing", func(context.Context) error { return boom })

	var (
		mu       sync.Mutex
		gotErr   error
		gotName  string
		gotInvID string
	)
	src.OnFailure(func(_ context.Context, inv Invocation, listener string, err error) {
		mu.Lock()
		defer mu.Unlock()
		gotErr, gotName, gotInvID = err, listener, inv.ID.String()
	})

	inv := src.Fire(context.Background())
	require.NoError(t, src.Wait(waitCtx(t)))

	mu.Lock()
	defer mu.Unlock()
	require.ErrorIs(t, gotErr, boom)
	require.Equal(t, "failing", gotName)
	require.Equal(t, inv.ID.String(), gotInvID)
}

func TestListenerOutlivesCallerContext(t *testing.T) {
	src := NewSource("btn", newTestLogger())
	release := make(chan struct{})
	var sawCancel atomic.Bool
	src.Register("slow", func(ctx context.Context) error {
		<-release
		sawCancel.Store(ctx.Err() != nil)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	src.Fire(ctx)
	cancel()
	close(release)
	require.NoError(t, src.Wait(waitCtx(t)))

	require.False(t, sawCancel.Load())
}

func TestWaitHonoursDeadline(t *testing.T) {
	src := NewSource("btn", newTestLogger())
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	src.Register("stuck", func(context.Context) error { <-release; return nil })
	src.Fire(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, src.Wait(ctx), context.DeadlineExceeded)
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
