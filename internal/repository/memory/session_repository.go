package memory

import (
	"sync"
	"time"

	"career-companion-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
	locks sync.Map // session id -> *sync.Mutex
}

// NewSessionRepository backs sessions with an expiring cache so idle
// conversations are evicted instead of accumulating for the process lifetime.
func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

// LoadOrCreate returns the stored session for an id, creating an idle one on
// first contact.
func (r *SessionRepository) LoadOrCreate(sessionID string) *store.Session {
	if session, found := r.Get(sessionID); found {
		return session
	}
	return &store.Session{
		ID:   sessionID,
		Mode: store.ModeNone,
	}
}

// Update runs fn against the session under a per-id lock and persists the
// result, so two concurrent requests for the same id cannot lose each
// other's state transition.
func (r *SessionRepository) Update(sessionID string, fn func(*store.Session)) {
	lock, _ := r.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	session := r.LoadOrCreate(sessionID)
	fn(session)
	r.Save(session)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
	r.locks.Delete(sessionID)
}
