package service

import (
	"context"
	"log"
	"sync"
	"time"

	"boum-cafe/broadcast-svc/internal/domain"
)

// FiredGuard remembers which schedules already fired in a minute bucket.
type FiredGuard interface {
	// MarkFired reports whether this call is the first for id in bucket.
	MarkFired(ctx context.Context, id string, bucket time.Time) (bool, error)
	Forget(ctx context.Context, id string) error
}

type MemoryGuard struct {
	mu    sync.Mutex
	fired map[string]time.Time
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{fired: make(map[string]time.Time)}
}

func (g *MemoryGuard) MarkFired(ctx context.Context, id string, bucket time.Time) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if last, ok := g.fired[id]; ok && last.Equal(bucket) {
		return false, nil
	}
	g.fired[id] = bucket
	return true, nil
}

func (g *MemoryGuard) Forget(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.fired, id)
	return nil
}

type FireFunc func(ctx context.Context, schedule domain.Schedule)

// Trigger fires active schedules when the wall clock enters their minute.
// Each schedule fires at most once per minute bucket; minutes that pass
// while the process is down are not replayed.
type Trigger struct {
	guard FiredGuard
	loc   *time.Location
	fire  FireFunc
	now   func() time.Time

	mu        sync.RWMutex
	schedules []domain.Schedule
}

func NewTrigger(guard FiredGuard, loc *time.Location, fire FireFunc) *Trigger {
	if loc == nil {
		loc = time.Local
	}
	return &Trigger{guard: guard, loc: loc, fire: fire, now: time.Now}
}

func (t *Trigger) Location() *time.Location {
	return t.loc
}

// SetSchedules replaces the schedule set and drops guard state for schedules
// that are gone.
func (t *Trigger) SetSchedules(ctx context.Context, schedules []domain.Schedule) {
	next := make(map[string]bool, len(schedules))
	for _, s := range schedules {
		next[s.ID] = true
	}

	t.mu.Lock()
	previous := t.schedules
	t.schedules = append([]domain.Schedule(nil), schedules...)
	t.mu.Unlock()

	for _, s := range previous {
		if next[s.ID] {
			continue
		}
		if err := t.guard.Forget(ctx, s.ID); err != nil {
			log.Printf("[broadcast-svc] failed to forget schedule %s: %v", s.ID, err)
		}
	}
}

func (t *Trigger) Schedules() []domain.Schedule {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.Schedule(nil), t.schedules...)
}

func (t *Trigger) matches(s domain.Schedule, local time.Time) bool {
	return s.IsActive &&
		s.Hour == local.Hour() &&
		s.Minute == local.Minute() &&
		s.HasDay(domain.DayOf(local.Weekday()))
}

// Tick fires every schedule due at now that has not fired in this minute
// yet, and returns the ones it fired.
func (t *Trigger) Tick(ctx context.Context, now time.Time) []domain.Schedule {
	local := now.In(t.loc)
	bucket := local.Truncate(time.Minute)

	var fired []domain.Schedule
	for _, s := range t.Schedules() {
		if !t.matches(s, local) {
			continue
		}
		first, err := t.guard.MarkFired(ctx, s.ID, bucket)
		if err != nil {
			log.Printf("[broadcast-svc] fired guard unavailable for schedule %s, skipping: %v", s.ID, err)
			continue
		}
		if !first {
			continue
		}
		log.Printf("[broadcast-svc] schedule %s (%s) fired at %s", s.ID, s.Kind, bucket.Format("Mon 15:04"))
		fired = append(fired, s)
		if t.fire != nil {
			t.fire(ctx, s)
		}
	}
	return fired
}

// Run ticks once immediately and then at every minute boundary until ctx
// is cancelled.
func (t *Trigger) Run(ctx context.Context) error {
	t.Tick(ctx, t.now())
	for {
		now := t.now()
		wait := now.Truncate(time.Minute).Add(time.Minute).Sub(now)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			t.Tick(ctx, t.now())
		}
	}
}

// NextFire returns the first instant strictly after after at which s is due,
// or the zero time when s has no valid days.
func (t *Trigger) NextFire(s domain.Schedule, after time.Time) time.Time {
	local := after.In(t.loc)
	for d := 0; d <= 7; d++ {
		candidate := time.Date(local.Year(), local.Month(), local.Day()+d, s.Hour, s.Minute, 0, 0, t.loc)
		if candidate.After(after) && s.HasDay(domain.DayOf(candidate.Weekday())) {
			return candidate
		}
	}
	return time.Time{}
}
