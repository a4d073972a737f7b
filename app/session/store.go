package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/km-arc/go-registration/app/registration"
)

// Store keeps sessions in memory, keyed by id.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	options []registration.Choice
	ttl     time.Duration
	max     int
	now     func() time.Time
	log     *zap.Logger

	validatorOpts []registration.Option
	onChange      func(active int)
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithValidatorOptions is passed to every new session's validator.
func WithValidatorOptions(opts ...registration.Option) StoreOption {
	return func(s *Store) { s.validatorOpts = append(s.validatorOpts, opts...) }
}

// WithActiveHook is called with the live session count after it changes.
func WithActiveHook(fn func(active int)) StoreOption {
	return func(s *Store) { s.onChange = fn }
}

// NewStore creates a store. Sessions idle longer than ttl are expired;
// creating past max evicts the least recently used.
func NewStore(options []registration.Choice, ttl time.Duration, max int, log *zap.Logger, opts ...StoreOption) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		options:  options,
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the live session with id and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	sess, ok := s.sessions[uid]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	now := s.now()
	if s.ttl > 0 && now.Sub(sess.idleSince()) > s.ttl {
		s.remove(uid)
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create starts a fresh session.
func (s *Store) Create() *Session {
	now := s.now()
	sess := newSession(s.options, now, s.validatorOpts...)

	s.mu.Lock()
	s.expireLocked(now)
	if s.max > 0 && len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}
	s.sessions[sess.ID] = sess
	active := len(s.sessions)
	s.mu.Unlock()

	s.log.Debug("session created", zap.String("session", sess.ID.String()), zap.Int("active", active))
	s.notify(active)
	return sess
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) remove(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	active := len(s.sessions)
	s.mu.Unlock()

	s.log.Debug("session expired", zap.String("session", id.String()))
	s.notify(active)
}

func (s *Store) expireLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.idleSince()) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) evictOldestLocked() {
	var (
		oldestID uuid.UUID
		oldest   time.Time
		found    bool
	)
	for id, sess := range s.sessions {
		seen := sess.idleSince()
		if !found || seen.Before(oldest) {
			oldestID, oldest, found = id, seen, true
		}
	}
	if found {
		delete(s.sessions, oldestID)
		s.log.Info("session evicted", zap.String("session", oldestID.String()))
	}
}

func (s *Store) notify(active int) {
	if s.onChange != nil {
		s.onChange(active)
	}
}
