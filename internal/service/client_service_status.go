package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
)

// statusBuffer is the per-subscriber channel capacity. An event is dropped
// for a subscriber whose buffer is full so a stalled observer can never
// block a write path or a reconciliation pass.
const statusBuffer = 16

// statusHub is the broadcast channel behind the sync status stream:
// multiple subscribers, replay-none.
type statusHub struct {
	mu     sync.Mutex
	subs   map[int]chan models.SyncStatusEvent
	nextID int

	logger *logger.Logger
}

func newStatusHub(log *logger.Logger) *statusHub {
	return &statusHub{
		subs:   make(map[int]chan models.SyncStatusEvent),
		logger: log,
	}
}

func (h *statusHub) Subscribe() (<-chan models.SyncStatusEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan models.SyncStatusEvent, statusBuffer)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// broadcast delivers one event to every current subscriber. cause may be
// nil; it is carried on error events and on pending-sync events produced by
// a swallowed remote failure.
func (h *statusHub) broadcast(status models.SyncStatus, cause error) {
	event := models.SyncStatusEvent{Status: status, Err: cause, At: time.Now()}

	h.logger.Debug().
		Str("func", "statusHub.broadcast").
		Str("status", string(status)).
		AnErr("cause", cause).
		Msg("sync status changed")

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		select {
		case sub <- event:
		default:
			// subscriber buffer full, drop the event
		}
	}
}
