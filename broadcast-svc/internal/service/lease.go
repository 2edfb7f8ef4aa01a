package service

import "context"

// Lease grants exclusive use of the speakers.
type Lease struct {
	slot chan struct{}
}

func NewLease() *Lease {
	return &Lease{slot: make(chan struct{}, 1)}
}

func (l *Lease) TryAcquire() bool {
	select {
	case l.slot <- struct{}{}:
		return true
	default:
		return false
	}
}

// Acquire waits for the lease or for ctx to end.
func (l *Lease) Acquire(ctx context.Context) error {
	select {
	case l.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Lease) Release() {
	select {
	case <-l.slot:
	default:
	}
}
