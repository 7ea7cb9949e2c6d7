package assistant

import (
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

// Session is one conversation's state: the extracted context plus the
// message history. Sessions are not safe for concurrent mutation; the
// transport layer serializes access per session.
type Session struct {
	ID      string
	Context *Context
	History []HistoryEntry
}

type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (s *Session) Record(role, content string) {
	s.History = append(s.History, HistoryEntry{Role: role, Content: content})
}

// Store keeps sessions in memory with a TTL. Each access re-arms the
// expiry, so a session lives as long as the conversation stays active.
type Store struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// GetOrCreate returns the session for id, creating it if unknown. An
// empty id gets a generated one.
func (s *Store) GetOrCreate(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	if v, ok := s.cache.Get(id); ok {
		sess := v.(*Session)
		s.cache.Set(id, sess, s.ttl)
		return sess
	}
	sess := &Session{ID: id, Context: &Context{}}
	s.cache.Set(id, sess, s.ttl)
	return sess
}

// Get returns the session for id without creating one.
func (s *Store) Get(id string) (*Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess := v.(*Session)
	s.cache.Set(id, sess, s.ttl)
	return sess, true
}

// Delete drops a session outright.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}
