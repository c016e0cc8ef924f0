package bot

import (
	"sync"
	"time"
)

type state int

const (
	stateIdle state = iota
	stateAwaitJSON
	stateAwaitName
)

type session struct {
	state      state
	stagedJSON string
	updatedAt  time.Time
}

// sessions holds per-user conversation state. The staged JSON lives only
// for the duration of one /convert flow.
type sessions struct {
	mu     sync.Mutex
	byUser map[int64]*session
	now    func() time.Time
}

func newSessions() *sessions {
	return &sessions{
		byUser: make(map[int64]*session),
		now:    time.Now,
	}
}

func (s *sessions) stateOf(userID int64) state {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byUser[userID]
	if !ok {
		return stateIdle
	}
	return sess.state
}

// awaitJSON starts (or restarts) the conversion flow for a user.
func (s *sessions) awaitJSON(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = &session{state: stateAwaitJSON, updatedAt: s.now()}
}

// stage stores the submitted JSON and moves on to awaiting the name.
func (s *sessions) stage(userID int64, jsonText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = &session{
		state:      stateAwaitName,
		stagedJSON: jsonText,
		updatedAt:  s.now(),
	}
}

// take returns the staged JSON and clears the user's state.
func (s *sessions) take(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byUser[userID]
	if !ok || sess.state != stateAwaitName {
		return "", false
	}
	delete(s.byUser, userID)
	return sess.stagedJSON, true
}

func (s *sessions) clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}

// evictStale drops conversations idle longer than ttl.
func (s *sessions) evictStale(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	for id, sess := range s.byUser {
		if sess.updatedAt.Before(cutoff) {
			delete(s.byUser, id)
		}
	}
}
