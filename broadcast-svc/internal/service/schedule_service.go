package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"boum-cafe/broadcast-svc/internal/domain"

	"github.com/google/uuid"
)

const schedulesTable = "broadcast_schedules"

type ScheduleService struct {
	repo      ScheduleRepository
	trigger   *Trigger
	publisher ChangePublisher
	now       func() time.Time
}

func NewScheduleService(repo ScheduleRepository, trigger *Trigger, publisher ChangePublisher) *ScheduleService {
	return &ScheduleService{
		repo:      repo,
		trigger:   trigger,
		publisher: publisher,
		now:       time.Now,
	}
}

// List returns the active schedules, each with its next firing time.
func (s *ScheduleService) List(ctx context.Context) ([]domain.Schedule, error) {
	schedules, err := s.repo.ListActiveSchedules()
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range schedules {
		if next := s.trigger.NextFire(schedules[i], now); !next.IsZero() {
			schedules[i].NextRun = &next
		}
	}
	return schedules, nil
}

func (s *ScheduleService) Create(ctx context.Context, schedule *domain.Schedule) error {
	if err := ValidateSchedule(schedule); err != nil {
		return err
	}
	schedule.ID = uuid.NewString()
	schedule.IsActive = true

	if err := s.repo.CreateSchedule(schedule); err != nil {
		return err
	}
	if next := s.trigger.NextFire(*schedule, s.now()); !next.IsZero() {
		schedule.NextRun = &next
	}
	s.changed(ctx, "schedule_created", schedule.ID)
	return nil
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrScheduleNotFound
	}
	rows, err := s.repo.DeleteSchedule(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrScheduleNotFound
	}
	s.changed(ctx, "schedule_deleted", id)
	return nil
}

// Reload replaces the trigger's schedules with the active rows in the store.
func (s *ScheduleService) Reload(ctx context.Context) error {
	schedules, err := s.repo.ListActiveSchedules()
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}
	s.trigger.SetSchedules(ctx, schedules)
	return nil
}

func (s *ScheduleService) changed(ctx context.Context, eventType, id string) {
	if err := s.Reload(ctx); err != nil {
		log.Printf("[broadcast-svc] %v", err)
	}
	if s.publisher == nil {
		return
	}
	event := domain.ChangeEvent{Type: eventType, Table: schedulesTable, ID: id, Timestamp: time.Now()}
	if err := s.publisher.PublishChange(ctx, event); err != nil {
		log.Printf("[broadcast-svc] failed to publish %s: %v", eventType, err)
	}
}

// ValidateSchedule normalizes schedule in place: days are deduplicated into
// week order and payload fields that do not belong to the kind are cleared.
func ValidateSchedule(schedule *domain.Schedule) error {
	if !schedule.Kind.Valid() {
		return fmt.Errorf("%w: unknown broadcast type %q", ErrInvalidSchedule, schedule.Kind)
	}
	if schedule.Hour < 0 || schedule.Hour > 23 {
		return fmt.Errorf("%w: hour must be between 0 and 23", ErrInvalidSchedule)
	}
	if schedule.Minute < 0 || schedule.Minute > 59 {
		return fmt.Errorf("%w: minute must be between 0 and 59", ErrInvalidSchedule)
	}

	days, err := normalizeDays(schedule.Days)
	if err != nil {
		return err
	}
	schedule.Days = days

	a := domain.Announcement{Kind: schedule.Kind}
	switch schedule.Kind {
	case domain.KindVibration:
		a.Number = schedule.VibrationNumber
	case domain.KindVehicle:
		a.Number = schedule.VehicleNumber
	case domain.KindCustom:
		a.Text = schedule.CustomText
	case domain.KindClosing:
		a.Closing = schedule.ClosingType
	}
	if _, err := BuildScript(a); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	number, text, closing := normalize(a.Number), normalize(a.Text), a.Closing
	schedule.VibrationNumber, schedule.VehicleNumber, schedule.CustomText, schedule.ClosingType = "", "", "", ""
	switch schedule.Kind {
	case domain.KindVibration:
		schedule.VibrationNumber = number
	case domain.KindVehicle:
		schedule.VehicleNumber = number
	case domain.KindCustom:
		schedule.CustomText = text
	case domain.KindClosing:
		schedule.ClosingType = closing
	}
	return nil
}

func normalizeDays(days []domain.Day) ([]domain.Day, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: at least one day is required", ErrInvalidSchedule)
	}
	seen := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		w, ok := d.Weekday()
		if !ok {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidSchedule, d)
		}
		seen[w] = true
	}
	weekdays := make([]int, 0, len(seen))
	for w := range seen {
		weekdays = append(weekdays, int(w))
	}
	sort.Ints(weekdays)
	out := make([]domain.Day, len(weekdays))
	for i, w := range weekdays {
		out[i] = domain.DayOf(time.Weekday(w))
	}
	return out, nil
}
