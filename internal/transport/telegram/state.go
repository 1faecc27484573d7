package telegram

import "sync"

// chatState is the position of a chat in the menu dialog.
type chatState int

const (
	stateNone chatState = iota
	stateChoosing
	stateAwaitingCode
)

// stateStore keeps the dialog state per chat in memory.
type stateStore struct {
	mu     sync.Mutex
	states map[int64]chatState
}

func newStateStore() *stateStore {
	return &stateStore{states: make(map[int64]chatState)}
}

func (s *stateStore) get(chatID int64) chatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[chatID]
}

func (s *stateStore) set(chatID int64, st chatState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[chatID] = st
}
