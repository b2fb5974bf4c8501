package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
)

// defaultProbeInterval is used when the configuration supplies no probe
// interval.
const defaultProbeInterval = 30 * time.Second

// subscriberBuffer is the per-subscriber channel capacity. Transitions are
// rare, so a small buffer is enough; a subscriber that still falls behind
// loses the oldest pending events rather than blocking the probe loop.
const subscriberBuffer = 8

type monitor struct {
	checker  Checker
	interval time.Duration

	mu     sync.Mutex
	online bool
	subs   map[int]chan Change
	nextID int

	jobMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewMonitor builds a [Monitor] polling checker every interval once
// started. The monitor begins offline; the first successful probe flips it
// online and emits the transition.
func NewMonitor(checker Checker, interval time.Duration, log *logger.Logger) Monitor {
	if interval <= 0 {
		interval = defaultProbeInterval
	}

	return &monitor{
		checker:  checker,
		interval: interval,
		subs:     make(map[int]chan Change),
		logger:   log,
	}
}

// NewOfflineMonitor builds a [Monitor] for disabled-remote mode: it reports
// offline forever, never probes, and never emits a transition.
func NewOfflineMonitor(log *logger.Logger) Monitor {
	return &monitor{
		subs:   make(map[int]chan Change),
		logger: log,
	}
}

func (m *monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *monitor) Subscribe() (<-chan Change, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	ch := make(chan Change, subscriberBuffer)
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// CheckNow implements [Monitor]. A check that cannot run counts as an
// offline verdict so that remote attempts stay suppressed.
func (m *monitor) CheckNow(ctx context.Context) (bool, error) {
	if m.checker == nil {
		return false, ErrNoChecker
	}

	online, err := m.checker.Check(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "monitor.CheckNow").Msg("connectivity check failed to run")
		m.reportCheckFailure(err)
		return false, err
	}

	m.setOnline(online)
	return online, nil
}

// Start implements [Monitor]. With no checker configured the monitor is
// permanently offline and Start is a no-op.
func (m *monitor) Start(ctx context.Context) {
	if m.checker == nil {
		return
	}

	m.Stop()

	m.jobMu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.jobMu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		// probe once at startup so the state settles before the
		// first tick
		_, _ = m.CheckNow(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = m.CheckNow(jobCtx)
			}
		}
	}()
}

func (m *monitor) Stop() {
	m.jobMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.jobMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// setOnline records the new state and, when it differs from the previous
// one, broadcasts a single transition to every subscriber.
func (m *monitor) setOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if online == m.online {
		return
	}
	m.online = online

	m.logger.Info().
		Str("func", "monitor.setOnline").
		Bool("online", online).
		Msg("connectivity transition")

	m.broadcastLocked(Change{Online: online, At: time.Now()})
}

// reportCheckFailure forces the offline state and sends the cause to every
// subscriber. Unlike a clean offline verdict this is emitted on every
// failed run, not only on a transition, so observers always see the error.
func (m *monitor) reportCheckFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.online = false
	m.broadcastLocked(Change{Online: false, At: time.Now(), Err: err})
}

func (m *monitor) broadcastLocked(change Change) {
	for _, sub := range m.subs {
		select {
		case sub <- change:
		default:
			// subscriber buffer full, drop the event
		}
	}
}
