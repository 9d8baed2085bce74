// Package store is the process-wide observable state container. It owns the
// canonical application state tree, applies partial updates, and fans out
// change notifications to interested observers; synchronously, with
// copy-on-read snapshot semantics.
//
// The store belongs to the bubbletea update loop: every read, write, and
// notification happens on that single goroutine, so there is no locking.
// Async work (downloads, storage writes) runs elsewhere and re-enters the
// loop as messages before touching the store.
package store

import (
	"errors"

	"github.com/classkit/rollcall/log"
)

// ErrNilSubscriber is returned by Subscribe when the callback is nil. This is
// a programming error in the caller and fails fast; every other odd input to
// the store (unknown key reads, double unsubscribe) is a tolerated no-op.
var ErrNilSubscriber = errors.New("store: subscriber must not be nil")

// Subscriber is a callback registered against one or more slice keys. It
// receives the current value of the slice that changed and a snapshot of the
// full state tree.
type Subscriber func(slice Slice, state State)

// subscription is one registration of a callback under one key. The same
// callback registered twice yields two independent subscriptions.
type subscription struct {
	fn      Subscriber
	removed bool
}

// Store holds the state tree and the subscriber registry. Construct exactly
// one per process at startup and pass it to every component that needs it.
type Store struct {
	state State
	subs  map[Key][]*subscription
	debug bool
}

// New creates a store with default slice values.
func New() *Store {
	return NewWithState(DefaultState())
}

// NewWithState creates a store with the given initial state. Used by tests
// and by startup code that seeds slices before the first render.
func NewWithState(initial State) *Store {
	return &Store{
		state: initial,
		subs:  make(map[Key][]*subscription),
	}
}

// State returns a snapshot of the full state tree. The struct copy shallow-
// copies each slice; two consecutive calls return equal values that can be
// mutated independently at the slice-field level.
func (st *Store) State() State {
	return st.state
}

// Slice returns a snapshot of one slice by key. Unknown keys return
// (nil, false) rather than panicking; a typo in a caller must not take the
// UI down.
func (st *Store) Slice(k Key) (Slice, bool) {
	return st.state.slice(k)
}

// Apply merges the given patches into the state, then notifies subscribers of
// every distinct key touched, in the order the patches were given.
// Notification is triggered by intent to update: a patch that sets a field to
// its current value still fires the key's subscribers. By the time Apply
// returns, every subscriber callback has already run.
func (st *Store) Apply(patches ...Patch) {
	if len(patches) == 0 {
		return
	}

	keys := make([]Key, 0, len(patches))
	seen := make(map[Key]bool, len(patches))
	for _, p := range patches {
		p.apply(&st.state)
		if !seen[p.Key()] {
			seen[p.Key()] = true
			keys = append(keys, p.Key())
		}
	}

	if st.debug {
		log.InfoLog.Printf("store: apply touched %v", keys)
	}
	st.Notify(keys...)
}

// Notify synchronously invokes every subscriber registered for each key,
// passing the current slice value and a full-state snapshot. A panicking
// subscriber is logged and skipped; the remaining subscribers for that key
// and all subsequent keys still run. Notify never mutates state.
func (st *Store) Notify(keys ...Key) {
	for _, k := range keys {
		slice, ok := st.state.slice(k)
		if !ok {
			if st.debug {
				log.WarningLog.Printf("store: notify on unknown key %q", k)
			}
			continue
		}

		// Snapshot the registration list so callbacks that subscribe or
		// unsubscribe during notification don't disturb this fan-out.
		subs := make([]*subscription, len(st.subs[k]))
		copy(subs, st.subs[k])

		if st.debug {
			log.InfoLog.Printf("store: notify %q -> %d subscriber(s)", k, len(subs))
		}
		for _, sub := range subs {
			if sub.removed {
				continue
			}
			st.invoke(k, sub.fn, slice)
		}
	}
}

// invoke runs one subscriber with panic isolation.
func (st *Store) invoke(k Key, fn Subscriber, slice Slice) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorLog.Printf("store: subscriber for %q panicked: %v", k, r)
		}
	}()
	fn(slice, st.state)
}

// Subscribe registers fn against every given key and returns an unsubscribe
// function that removes exactly this registration from all of them. The
// returned function is idempotent; calling it twice is a no-op. A nil fn is
// rejected immediately with ErrNilSubscriber.
func (st *Store) Subscribe(fn Subscriber, keys ...Key) (func(), error) {
	if fn == nil {
		return nil, ErrNilSubscriber
	}

	added := make(map[Key]*subscription, len(keys))
	for _, k := range keys {
		if _, dup := added[k]; dup {
			continue
		}
		sub := &subscription{fn: fn}
		st.subs[k] = append(st.subs[k], sub)
		added[k] = sub
	}

	return func() {
		for k, sub := range added {
			if sub.removed {
				continue
			}
			sub.removed = true
			st.subs[k] = removeSubscription(st.subs[k], sub)
		}
	}, nil
}

func removeSubscription(subs []*subscription, target *subscription) []*subscription {
	for i, s := range subs {
		if s == target {
			return append(subs[:i], subs[i+1:]...)
		}
	}
	return subs
}

// SubscriberCount returns the number of callbacks currently registered for a
// key. Unknown keys count zero.
func (st *Store) SubscriberCount(k Key) int {
	return len(st.subs[k])
}

// ClearSubscriptions empties the subscriber registry for every key. State
// slices are untouched. Used at teardown and for test isolation.
func (st *Store) ClearSubscriptions() {
	for k, subs := range st.subs {
		for _, sub := range subs {
			sub.removed = true
		}
		delete(st.subs, k)
	}
}

// SetDebug toggles verbose logging of state transitions. Purely
// observability; no effect on merge or notification semantics.
func (st *Store) SetDebug(enabled bool) {
	st.debug = enabled
}
