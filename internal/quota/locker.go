package quota

import (
	"context"
	"sync"
)

// Locker serializes quadrant admission so the count-then-create sequence
// cannot race on one quadrant.
type Locker interface {
	Acquire(ctx context.Context, key string) error

	Release(ctx context.Context, key string) error
}

// LocalLocker holds one slot per key in process memory. Sufficient for a
// single server instance; multi-instance deployments use the Redis locker.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{})}
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = make(chan struct{}, 1)
		l.slots[key] = s
	}
	return s
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) error {
	select {
	case l.slot(key) <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *LocalLocker) Release(ctx context.Context, key string) error {
	select {
	case <-l.slot(key):
	default:
	}
	return nil
}
