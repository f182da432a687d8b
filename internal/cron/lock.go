package cron

import (
	"context"
	"sync"
)

// Lock coordinates exclusive job cycles.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// MutexLock implements Lock for a single-process deployment. All state in
// this system is in-memory and process-local, so there is never a second
// instance to coordinate with; the lock only guards against overlapping
// cycles within the process.
type MutexLock struct {
	mu sync.Mutex
}

// NewMutexLock constructs an in-process lock.
func NewMutexLock() *MutexLock {
	return &MutexLock{}
}

// Acquire tries to own the lock without blocking.
func (l *MutexLock) Acquire(ctx context.Context) (bool, error) {
	return l.mu.TryLock(), nil
}

// Release frees the lock.
func (l *MutexLock) Release(ctx context.Context) error {
	l.mu.Unlock()
	return nil
}
