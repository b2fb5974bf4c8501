package connectivity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkerFunc adapts a plain function to the Checker interface for tests.
type checkerFunc func(ctx context.Context) (bool, error)

func (f checkerFunc) Check(ctx context.Context) (bool, error) { return f(ctx) }

func TestMonitor_StartsOffline(t *testing.T) {
	m := NewMonitor(checkerFunc(func(context.Context) (bool, error) { return true, nil }), time.Minute, logger.Nop())

	assert.False(t, m.Online())
}

func TestMonitor_CheckNow_TransitionsOnce(t *testing.T) {
	verdict := true
	m := NewMonitor(checkerFunc(func(context.Context) (bool, error) { return verdict, nil }), time.Minute, logger.Nop())

	ch, cancel := m.Subscribe()
	defer cancel()

	// two consecutive online verdicts must produce exactly one transition
	online, err := m.CheckNow(context.Background())
	require.NoError(t, err)
	require.True(t, online)

	online, err = m.CheckNow(context.Background())
	require.NoError(t, err)
	require.True(t, online)

	change := <-ch
	assert.True(t, change.Online)
	assert.False(t, change.At.IsZero())

	select {
	case extra := <-ch:
		t.Fatalf("unexpected second transition: %+v", extra)
	default:
	}

	// flipping the verdict produces the offline transition
	verdict = false
	online, err = m.CheckNow(context.Background())
	require.NoError(t, err)
	require.False(t, online)

	change = <-ch
	assert.False(t, change.Online)
	assert.False(t, m.Online())
}

func TestMonitor_CheckNow_CheckerError(t *testing.T) {
	checkErr := errors.New("dns lookup timed out")
	m := NewMonitor(checkerFunc(func(context.Context) (bool, error) { return false, checkErr }), time.Minute, logger.Nop())

	ch, cancel := m.Subscribe()
	defer cancel()

	online, err := m.CheckNow(context.Background())

	require.ErrorIs(t, err, checkErr)
	assert.False(t, online)
	assert.False(t, m.Online())

	// the failure travels on the change stream with its cause attached
	change := <-ch
	assert.False(t, change.Online)
	assert.ErrorIs(t, change.Err, checkErr)

	// unlike a clean offline verdict, every failed run emits a change
	_, err = m.CheckNow(context.Background())
	require.ErrorIs(t, err, checkErr)

	change = <-ch
	assert.ErrorIs(t, change.Err, checkErr)
}

func TestMonitor_Subscribe_ReplayNone(t *testing.T) {
	m := NewMonitor(checkerFunc(func(context.Context) (bool, error) { return true, nil }), time.Minute, logger.Nop())

	_, err := m.CheckNow(context.Background())
	require.NoError(t, err)
	require.True(t, m.Online())

	// a subscriber registered after the transition sees nothing
	ch, cancel := m.Subscribe()
	defer cancel()

	select {
	case change := <-ch:
		t.Fatalf("replayed transition to late subscriber: %+v", change)
	default:
	}
}

func TestMonitor_Subscribe_CancelClosesChannel(t *testing.T) {
	m := NewMonitor(checkerFunc(func(context.Context) (bool, error) { return true, nil }), time.Minute, logger.Nop())

	ch, cancel := m.Subscribe()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// cancelling twice is safe
	cancel()
}

func TestMonitor_StartStop(t *testing.T) {
	probes := make(chan struct{}, 16)
	m := NewMonitor(checkerFunc(func(context.Context) (bool, error) {
		select {
		case probes <- struct{}{}:
		default:
		}
		return true, nil
	}), 10*time.Millisecond, logger.Nop())

	m.Start(context.Background())
	defer m.Stop()

	select {
	case <-probes:
	case <-time.After(2 * time.Second):
		t.Fatal("probe loop never ran")
	}

	m.Stop()

	// after Stop no further probes arrive
	drain := func() {
		for {
			select {
			case <-probes:
			default:
				return
			}
		}
	}
	drain()
	time.Sleep(50 * time.Millisecond)
	select {
	case <-probes:
		t.Fatal("probe ran after Stop")
	default:
	}
}

func TestOfflineMonitor(t *testing.T) {
	m := NewOfflineMonitor(logger.Nop())

	assert.False(t, m.Online())

	online, err := m.CheckNow(context.Background())
	require.ErrorIs(t, err, ErrNoChecker)
	assert.False(t, online)

	// Start must be a no-op, Stop must not hang
	m.Start(context.Background())
	m.Stop()

	ch, cancel := m.Subscribe()
	defer cancel()
	select {
	case change := <-ch:
		t.Fatalf("offline monitor emitted a transition: %+v", change)
	default:
	}
}
