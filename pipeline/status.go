package pipeline

import "sync"

// Status carries the two terminal session errors (camera access, model
// load). There is exactly one user-visible message; a newer one overwrites
// the previous. Per-frame failures never land here.
type Status struct {
	mutex   sync.RWMutex
	message string
}

func (s *Status) SetError(msg string) {
	s.mutex.Lock()
	s.message = msg
	s.mutex.Unlock()
}

func (s *Status) Message() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.message
}
