package store

import "time"

// SetNow replaces the clock of the store.
func SetNow(s *Store, now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.now = now
}
