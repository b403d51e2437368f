// Package session holds the console's authentication state: the process-wide
// Store, the one-shot Bootstrapper that resolves a persisted token, the
// route Policy and the login/logout flows.
package session

import (
	"sync"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

// Session is a snapshot of the authentication state. An empty Token and a
// nil User mean absent.
type Session struct {
	Token           string
	User            *domain.User
	IsAuthenticated bool
	Initialized     bool
}

// Role returns the user's role, or "" when no user is present.
func (s Session) Role() domain.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

func (s Session) clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Field is one change applied by Store.Set.
type Field func(*Session)

func WithToken(token string) Field {
	return func(s *Session) { s.Token = token }
}

// WithUser stores a copy of u; nil clears the user.
func WithUser(u *domain.User) Field {
	return func(s *Session) {
		if u == nil {
			s.User = nil
			return
		}
		cp := *u
		s.User = &cp
	}
}

func WithAuthenticated(ok bool) Field {
	return func(s *Session) { s.IsAuthenticated = ok }
}

// MarkInitialized records that startup resolution finished. There is no
// field that clears it.
func MarkInitialized() Field {
	return func(s *Session) { s.Initialized = true }
}

// Listener is called after every Set with the new session.
type Listener func(Session)

type subscriber struct {
	id int
	fn Listener
}

// Store is the single holder of session state for the process.
//
// Set applies fields at once and notifies listeners in subscription order,
// outside the state lock. Notifications are delivered one write at a time
// in write order: a Set made while another is notifying, including one
// made by a listener, is delivered by that notifying call after the
// current round.
type Store struct {
	mu     sync.Mutex
	state  Session
	subs   []subscriber
	nextID int

	notifying bool
	pending   []Session
}

func NewStore() *Store {
	return &Store{}
}

// Get returns a copy of the current session. It never blocks on I/O.
func (st *Store) Get() Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.clone()
}

// Set merges fields into the session. No validation is performed.
func (st *Store) Set(fields ...Field) {
	st.mu.Lock()
	for _, f := range fields {
		f(&st.state)
	}
	st.pending = append(st.pending, st.state.clone())
	if st.notifying {
		st.mu.Unlock()
		return
	}
	st.notifying = true
	st.mu.Unlock()

	st.deliver()
}

// deliver drains pending notifications. A panicking listener drops the
// rest of the queue so later writes can notify again.
func (st *Store) deliver() {
	done := false
	defer func() {
		if !done {
			st.mu.Lock()
			st.notifying = false
			st.pending = nil
			st.mu.Unlock()
		}
	}()

	st.mu.Lock()
	for len(st.pending) > 0 {
		snapshot := st.pending[0]
		st.pending = st.pending[1:]
		subs := make([]subscriber, len(st.subs))
		copy(subs, st.subs)
		st.mu.Unlock()

		for _, s := range subs {
			s.fn(snapshot.clone())
		}
		st.mu.Lock()
	}
	st.notifying = false
	st.pending = nil
	done = true
	st.mu.Unlock()
}

// Subscribe registers fn and returns a function that removes it.
func (st *Store) Subscribe(fn Listener) (unsubscribe func()) {
	st.mu.Lock()
	defer st.mu.Unlock()
	id := st.nextID
	st.nextID++
	st.subs = append(st.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			st.mu.Lock()
			defer st.mu.Unlock()
			for i, s := range st.subs {
				if s.id == id {
					st.subs = append(st.subs[:i], st.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Reset logs the session out. Initialized is kept.
func (st *Store) Reset() {
	st.Set(WithToken(""), WithUser(nil), WithAuthenticated(false))
}
