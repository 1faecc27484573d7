package subscription

import "sync"

// Registry is the set of users who currently want notifications.
// It is safe for concurrent use; reads observe the latest completed write.
type Registry struct {
	mu    sync.RWMutex
	users map[int64]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[int64]struct{})}
}

// Subscribe adds userID. Reports whether the user was newly added.
func (r *Registry) Subscribe(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; ok {
		return false
	}
	r.users[userID] = struct{}{}
	return true
}

// Unsubscribe removes userID. Reports whether the user was present.
func (r *Registry) Unsubscribe(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return false
	}
	delete(r.users, userID)
	return true
}

// IsSubscribed reports whether userID is currently registered.
func (r *Registry) IsSubscribed(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userID]
	return ok
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
