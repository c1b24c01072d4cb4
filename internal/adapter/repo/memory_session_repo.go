package repo

import (
	"sync"

	"github.com/nuelxcodev/luxe/internal/usecase"
)

// MemorySessionRepo keeps live sessions in process memory. Losing the
// process loses every session, which is the contract: nothing here may
// survive a restart.
type MemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*usecase.Session
}

func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{sessions: map[string]*usecase.Session{}}
}

func (r *MemorySessionRepo) Put(s *usecase.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *MemorySessionRepo) Get(id string) (*usecase.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *MemorySessionRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

var _ usecase.SessionRepo = (*MemorySessionRepo)(nil)
