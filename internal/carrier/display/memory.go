// Package display provides DisplaySink implementations.
package display

import (
	"context"
	"sync"

	"carriertext/internal/carrier/models"
)

// InMemory keeps the last pushed result. Suitable for tests and single-process runs.
type InMemory struct {
	mu     sync.RWMutex
	last   models.DisplayResult
	pushes int
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Display(_ context.Context, result models.DisplayResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = result
	s.pushes++
	return nil
}

// Last returns the last pushed result and how many pushes have happened.
func (s *InMemory) Last() (models.DisplayResult, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.pushes
}
