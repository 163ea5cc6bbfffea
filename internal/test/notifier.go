package test

import "sync"

// Notifier records the notifications it receives.
type Notifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *Notifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.successes = append(n.successes, message)
}

func (n *Notifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.errors = append(n.errors, message)
}

// Successes returns all success notifications in the order they were received.
func (n *Notifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.successes...)
}

// Errors returns all error notifications in the order they were received.
func (n *Notifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]string(nil), n.errors...)
}
