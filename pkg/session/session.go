// Package session tracks live playback sessions.
//
// The server registers one [Session] per WebSocket connection and updates
// it whenever the connection's controller changes state, so operators can
// see what is being played:
//
//	reg := session.NewRegistry()
//	s := reg.Open()
//	defer reg.Close(s.ID)
//	reg.Update(s.ID, ctl.Snapshot())
//
// A Registry is process-local and safe for concurrent use.
package session

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/dsaviz/pkg/playback"
)

// Session is a snapshot of one live playback session.
type Session struct {
	ID        string    `json:"id"`
	Algorithm string    `json:"algorithm,omitempty"`
	Cursor    int       `json:"cursor"`
	Length    int       `json:"length"`
	Playing   bool      `json:"playing"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Age returns how long the session has been open at now.
func (s Session) Age(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}

// Registry holds the open sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// GenerateID returns a new random session ID.
func GenerateID() string {
	return uuid.NewString()
}

// Open registers a new session and returns it.
func (r *Registry) Open() Session {
	now := r.now()
	s := &Session{ID: GenerateID(), CreatedAt: now, UpdatedAt: now}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return *s
}

// Update records the latest controller state of session id. Unknown ids
// are ignored.
func (r *Registry) Update(id string, st playback.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return
	}
	s.Algorithm = st.Algorithm
	s.Cursor = st.Cursor
	s.Length = st.Length
	s.Playing = st.Playing
	s.UpdatedAt = r.now()
}

// Close removes session id and returns its final snapshot.
func (r *Registry) Close(id string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return Session{}, false
	}
	delete(r.sessions, id)
	return *s, true
}

// Get returns a snapshot of session id.
func (r *Registry) Get(id string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// List returns every open session, oldest first.
func (r *Registry) List() []Session {
	r.mu.RLock()
	out := make([]Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, *s)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Session) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return out
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
