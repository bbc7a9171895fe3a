package agent

import (
	"sync"

	"github.com/google/uuid"
)

// transaction multiplexes concurrent in-flight requests over a single
// connection, matching replies to callers by transaction id (spec §5:
// "matched to replies by a transaction id").
type transaction struct {
	mu      sync.Mutex
	pending map[string]chan []byte
}

func newTransactionTable() *transaction {
	return &transaction{pending: make(map[string]chan []byte)}
}

// begin allocates a new transaction id and a reply channel for it.
func (t *transaction) begin() (string, chan []byte) {
	id := uuid.New().String()
	ch := make(chan []byte, 1)
	t.mu.Lock()
	t.pending[id] = ch
	t.mu.Unlock()
	return id, ch
}

// resolve delivers a framed reply payload to the transaction awaiting it.
// Reports false if no caller is waiting (stale or unknown transaction id).
func (t *transaction) resolve(id string, payload []byte) bool {
	t.mu.Lock()
	ch, ok := t.pending[id]
	if ok {
		delete(t.pending, id)
	}
	t.mu.Unlock()
	if !ok {
		return false
	}
	ch <- payload
	return true
}

// abandon removes a transaction without resolving it, used when the caller's
// context is cancelled before a reply arrives.
func (t *transaction) abandon(id string) {
	t.mu.Lock()
	delete(t.pending, id)
	t.mu.Unlock()
}
