package model

import "sync"

// Destroyable is implemented by every long-lived entity (Session, System,
// Target, Process, Thread, JobContext, Breakpoint, Filter) so that a Ref can
// detect staleness without keeping the entity alive.
type Destroyable interface {
	Destroyed() bool
}

// Ref is a non-owning ("weak") reference to a Destroyable entity, per spec
// §3's "Observers hold only non-owning (weak) references..." and §9's design
// note to express this as a handle checked before every callback body rather
// than a reference that keeps its subject alive. A continuation captured
// from inside an observer callback must re-resolve its Ref before acting.
type Ref[T Destroyable] struct {
	entity T
	valid  bool
}

// NewRef wraps entity in a Ref.
func NewRef[T Destroyable](entity T) Ref[T] {
	return Ref[T]{entity: entity, valid: true}
}

// Resolve returns the entity and true if it is still live, or the zero
// value and false if it has since been destroyed or the Ref was never set.
func (r Ref[T]) Resolve() (T, bool) {
	var zero T
	if !r.valid || r.entity.Destroyed() {
		return zero, false
	}
	return r.entity, true
}

// ObserverList is a synchronous, single-dispatch-thread observer list (spec
// §3/§5): Fire calls every currently-registered observer, in registration
// order, to completion before returning; it tolerates an observer removing
// itself or another observer mid-dispatch. This is deliberately distinct
// from internal/pubsub's async Broker, which is for cross-goroutine fan-out
// (e.g. tailing logs into the TUI) rather than the core's synchronous
// notification contract.
type ObserverList[T any] struct {
	mu     sync.Mutex
	nextID uint64
	order  []uint64
	fns    map[uint64]func(T)
}

// NewObserverList creates an empty observer list.
func NewObserverList[T any]() *ObserverList[T] {
	return &ObserverList[T]{fns: make(map[uint64]func(T))}
}

// Add registers fn and returns a handle usable with Remove.
func (l *ObserverList[T]) Add(fn func(T)) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	id := l.nextID
	l.fns[id] = fn
	l.order = append(l.order, id)
	return id
}

// Remove unregisters the observer with the given handle. No-op if absent.
func (l *ObserverList[T]) Remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.fns, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i:i], l.order[i+1:]...)
			break
		}
	}
}

// Fire dispatches event to every currently-registered observer, in
// registration order, synchronously. Observers added during dispatch are
// not invoked for this event; observers removed during dispatch are skipped
// once they're gone.
func (l *ObserverList[T]) Fire(event T) {
	l.mu.Lock()
	snapshot := append([]uint64(nil), l.order...)
	l.mu.Unlock()

	for _, id := range snapshot {
		l.mu.Lock()
		fn, ok := l.fns[id]
		l.mu.Unlock()
		if ok {
			fn(event)
		}
	}
}

// Len reports the number of currently-registered observers.
func (l *ObserverList[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}
