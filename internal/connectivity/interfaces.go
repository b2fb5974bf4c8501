// Package connectivity observes remote reachability for the client.
//
// The sync engine never talks to the network to find out whether it is
// online: it asks the [Monitor], which keeps a cached verdict refreshed by a
// periodic probe. Transitions between the online and offline states are
// broadcast to subscribers; the engine uses the offline→online edge to
// trigger exactly one reconciliation pass per transition.
package connectivity

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connectivity_mock.go -package=mock

// Change is one element of the change stream: the state the monitor moved
// to and when the probe observed it. Clean verdicts produce one Change per
// transition, never one per probe. A probe that could not run produces a
// Change with Err set and Online=false on every failed run, so observers
// can surface the cause.
type Change struct {
	Online bool
	At     time.Time
	Err    error
}

// Checker performs a single reachability probe against the remote.
//
// The boolean is the probe's verdict. A transport-level failure (connection
// refused, timeout, DNS) is a clean offline verdict (false, nil); a non-nil
// error means the check itself could not run, which the monitor also treats
// as offline but reports with the cause attached.
type Checker interface {
	Check(ctx context.Context) (bool, error)
}

// Monitor tracks the current online/offline state and notifies subscribers
// on every transition.
type Monitor interface {
	// Online returns the current cached state. It never probes.
	Online() bool

	// Subscribe registers a transition listener. The returned channel
	// carries future transitions only (replay-none) and is closed by the
	// returned cancel function. Slow subscribers lose events rather than
	// block the monitor.
	Subscribe() (<-chan Change, func())

	// CheckNow runs one probe immediately, applies the same transition
	// logic as the periodic loop, and returns the resulting state. The
	// error is non-nil only when the check itself could not run.
	CheckNow(ctx context.Context) (bool, error)

	// Start launches the periodic probe loop. Any previously running
	// loop is stopped first.
	Start(ctx context.Context)

	// Stop terminates the probe loop and blocks until it has exited.
	Stop()
}
