package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/chording/chord"
	"github.com/jsphweid/chording/model"
)

var ErrNotFound = errors.New("session not found")

// Registry holds live transpose sessions in memory. Every access to a
// session goes through the registry lock, so chord.Session needs none.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*chord.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*chord.Session)}
}

func (r *Registry) Create(text, key string) model.SessionView {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	s := chord.NewSession(text, key)
	r.sessions[id] = s
	return view(id, s)
}

func (r *Registry) Get(id string) (model.SessionView, error) {
	return r.Apply(id, func(*chord.Session) {})
}

// Apply runs f on the session while holding the registry lock and returns
// the resulting state.
func (r *Registry) Apply(id string, f func(*chord.Session)) (model.SessionView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return model.SessionView{}, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	f(s)
	return view(id, s), nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func view(id string, s *chord.Session) model.SessionView {
	return model.SessionView{
		ID:          id,
		Text:        s.Text(),
		Key:         s.Key(),
		OriginalKey: s.OriginalKey(),
		Semitones:   s.Semitones(),
	}
}
