// Package auth owns the authenticated session: who is logged in, whether a
// login is in flight, and persistence of that state across restarts.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/jornada/internal/domain"
	"github.com/alexanderramin/jornada/internal/repository"
	"github.com/google/uuid"
)

// StorageKey is the key the session is persisted under.
const StorageKey = "auth-storage"

// DefaultDelay simulates the round trip to a remote auth service.
const DefaultDelay = time.Second

// persistedSession is the on-disk envelope of the session record.
type persistedSession struct {
	State   domain.Session `json:"state"`
	Version int            `json:"version"`
}

// Store is the single authority for the current session. It is safe for
// concurrent use.
//
// Every Login takes a generation number. Logout and newer logins advance the
// generation, so a login that resolves after being superseded leaves the
// state alone and reports false.
type Store struct {
	kv       repository.KVRepo
	verifier Verifier
	delay    time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	session domain.Session
	gen     uint64
}

// Option configures a Store.
type Option func(*Store)

// WithDelay sets the simulated login latency. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a store and rehydrates the persisted session. Missing,
// unreadable or inconsistent data yields an empty session.
func NewStore(ctx context.Context, kv repository.KVRepo, verifier Verifier, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		verifier: verifier,
		delay:    DefaultDelay,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.session = s.rehydrate(ctx)
	return s
}

// Session returns a snapshot of the current state.
func (s *Store) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// Login checks the credentials after the simulated delay. A wrong pair is a
// normal outcome reported as false, not an error. Cancelling ctx during the
// delay resolves the attempt as failed.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	attemptID := uuid.NewString()

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.session.IsLoading = true
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "login_started", "attempt_id", attemptID)

	var user *domain.User
	ok := s.wait(ctx)
	if ok {
		user, ok = s.verifier.Verify(ctx, email, password)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.logger.InfoContext(ctx, "login_superseded", "attempt_id", attemptID)
		return false
	}

	if ok {
		s.session = domain.Session{User: user, IsAuthenticated: true}
	} else {
		s.session.IsLoading = false
	}
	s.persistLocked(ctx)

	s.logger.InfoContext(ctx, "login_resolved", "attempt_id", attemptID, "success", ok)
	return ok
}

// Logout clears the session unconditionally and removes the persisted
// record. It also supersedes any login still in flight.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.session = domain.Session{}
	if err := s.kv.Delete(context.Background(), StorageKey); err != nil {
		s.logger.Warn("session_delete_failed", "error", err)
	}
}

// SetLoading sets the loading flag directly.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.IsLoading = loading
	s.persistLocked(context.Background())
}

func (s *Store) wait(ctx context.Context) bool {
	if s.delay <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// persistLocked writes the session. Failures are logged and dropped.
func (s *Store) persistLocked(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	payload, err := json.Marshal(persistedSession{State: s.session})
	if err != nil {
		s.logger.ErrorContext(ctx, "session_encode_failed", "error", err)
		return
	}
	if err := s.kv.Put(ctx, StorageKey, string(payload)); err != nil {
		s.logger.WarnContext(ctx, "session_persist_failed", "error", err)
	}
}

func (s *Store) rehydrate(ctx context.Context) domain.Session {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.WarnContext(ctx, "session_read_failed", "error", err)
		}
		return domain.Session{}
	}

	var p persistedSession
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.logger.WarnContext(ctx, "session_decode_failed", "error", err)
		return domain.Session{}
	}

	sess := p.State
	sess.IsLoading = false
	if !sess.Valid() {
		s.logger.WarnContext(ctx, "session_inconsistent", "authenticated", sess.IsAuthenticated)
		return domain.Session{}
	}
	return sess
}
