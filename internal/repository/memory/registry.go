package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"smartcarbon/internal/domain"
)

type entry struct {
	session    domain.Session
	credential string
	store      *DocumentStore
}

// Registry owns every live session. Each session gets its own DocumentStore;
// stores are never shared.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*entry),
		now:      time.Now,
	}
}

func (r *Registry) create() domain.Session {
	s := domain.Session{ID: uuid.New(), CreatedAt: r.now().UTC()}
	r.mu.Lock()
	r.sessions[s.ID] = &entry{session: s, store: NewDocumentStore()}
	r.mu.Unlock()
	return s
}

func (r *Registry) lookup(id uuid.UUID) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return e, nil
}

func (r *Registry) remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) setCredential(id uuid.UUID, apiKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.credential = apiKey
	return nil
}

func (r *Registry) credential(id uuid.UUID) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return e.credential, nil
}
