package chat

import (
	"sync"

	"github.com/google/uuid"

	"newschat/internal/model"
)

// session is one live transcript. Turns are append-only; busy is true while
// a completion call is outstanding. Sessions are never persisted, they live
// for the process lifetime only.
type session struct {
	id string

	mu    sync.Mutex
	turns []model.ChatTurn
	busy  bool
}

// Store keeps live sessions in memory, keyed by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*session)}
}

func (st *Store) create(greeting model.ChatTurn) *session {
	sess := &session{
		id:    uuid.NewString(),
		turns: []model.ChatTurn{greeting},
	}

	st.mu.Lock()
	st.sessions[sess.id] = sess
	st.mu.Unlock()

	return sess
}

func (st *Store) get(id string) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	sess, ok := st.sessions[id]
	return sess, ok
}

// view copies the transcript so callers never alias the live slice.
func (s *session) view() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := make([]model.ChatTurn, len(s.turns))
	copy(turns, s.turns)

	return SessionView{ID: s.id, Turns: turns, Busy: s.busy}
}

// SessionView is a point-in-time copy of a session handed to the transport
// layer.
type SessionView struct {
	ID    string
	Turns []model.ChatTurn
	Busy  bool
}
