package quota

import (
	"context"
	"fmt"

	"task-matrix-system.com/task-matrix/internal/constants"
	apperr "task-matrix-system.com/task-matrix/internal/errors"
	"task-matrix-system.com/task-matrix/internal/matrix"
)

// OpenCounter reports how many open tasks currently occupy a quadrant.
type OpenCounter interface {
	CountOpenInQuadrant(ctx context.Context, u constants.Urgency, i constants.Importance) (int64, error)
}

// Guard admits task creations as long as the target quadrant stays under its
// open-task cap. The count check runs under a per-quadrant lock, so the cap
// is hard as long as every creation goes through Admit.
type Guard struct {
	locker  Locker
	counter OpenCounter
	max     int64
}

func NewGuard(locker Locker, counter OpenCounter, max int64) *Guard {
	return &Guard{
		locker:  locker,
		counter: counter,
		max:     max,
	}
}

// Admit checks the quadrant's open-task count and, on success, returns a
// release func the caller must invoke once the creation has finished. The
// lock spans the create so a racing request sees the new task in its count.
func (g *Guard) Admit(
	ctx context.Context,
	u constants.Urgency,
	i constants.Importance,
) (func(), error) {
	quadrant := matrix.Quadrant(u, i)
	key := fmt.Sprintf("quadrant:%d", quadrant)

	if err := g.locker.Acquire(ctx, key); err != nil {
		return nil, err
	}

	count, err := g.counter.CountOpenInQuadrant(ctx, u, i)
	if err != nil {
		g.release(key)
		return nil, err
	}

	if count >= g.max {
		g.release(key)
		return nil, &apperr.QuotaExceededError{
			Quadrant:     quadrant,
			Label:        matrix.QuadrantLabel(quadrant),
			CurrentCount: count,
		}
	}

	return func() { g.release(key) }, nil
}

func (g *Guard) release(key string) {
	_ = g.locker.Release(context.Background(), key)
}
