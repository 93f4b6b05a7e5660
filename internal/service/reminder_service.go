package service

import (
	"context"
	"errors"
	"fmt"
	"reminderTracker/internal/logger"
	"reminderTracker/internal/models/reminder"
	rep "reminderTracker/internal/repository"
	"time"

	"go.uber.org/zap"
)

// здесь происходит проверка ошибок бизнес-логики

type ReminderService struct {
	repo ReminderRepository
	now  func() time.Time
	loc  *time.Location
}

func NewReminderService(repo ReminderRepository, options ...ServiceOption) ReminderService {
	s := ReminderService{
		repo: repo,
		now:  time.Now,
		loc:  time.Local,
	}
	for _, opt := range options {
		opt(&s)
	}
	return s
}

func (s *ReminderService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

func (s *ReminderService) CountReminders(ctx context.Context) int {
	return s.repo.Count(ctx)
}

func (s *ReminderService) CreateReminder(ctx context.Context, r reminder.Reminder) (*reminder.Reminder, error) {
	if err := s.repo.Insert(ctx, r); err != nil {
		if errors.Is(err, rep.ErrAlreadyExists) {
			logger.Info("Service: Напоминание уже существует", zap.String("target_id", r.ID))
			return nil, NewAlreadyExists(r.ID, err)
		}
		return nil, fmt.Errorf("создание напоминания: %w", err)
	}
	return &r, nil
}

func (s *ReminderService) GetReminder(ctx context.Context, id string) (*reminder.Reminder, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	return &r, nil
}

func (s *ReminderService) UpdateReminder(ctx context.Context, id string, options ...reminder.Option) (*reminder.Reminder, error) {
	updated, err := s.repo.Modify(ctx, id, func(r *reminder.Reminder) {
		reminder.Apply(r, options...)
	})
	if err != nil {
		return nil, s.lookupError(id, err)
	}
	return &updated, nil
}

func (s *ReminderService) MarkCompleted(ctx context.Context, id string) (*reminder.Reminder, error) {
	return s.UpdateReminder(ctx, id, reminder.WithCompleted(true))
}

func (s *ReminderService) UnmarkCompleted(ctx context.Context, id string) (*reminder.Reminder, error) {
	return s.UpdateReminder(ctx, id, reminder.WithCompleted(false))
}

func (s *ReminderService) DeleteReminder(ctx context.Context, id string) error {
	removed, err := s.repo.RemoveByID(ctx, id)
	if err != nil {
		return fmt.Errorf("удаление напоминания: %w", err)
	}
	if !removed {
		logger.Info("Service: Напоминание не найдено", zap.String("target_id", id))
		return NewNotFound(id, rep.ErrNotFound)
	}
	return nil
}

func (s *ReminderService) ListReminders(ctx context.Context) ([]reminder.Reminder, error) {
	reminders, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение напоминаний: %w", err)
	}
	return nonEmpty(reminders, "all", MsgNoReminders)
}

func (s *ReminderService) CompletedReminders(ctx context.Context) ([]reminder.Reminder, error) {
	return s.filtered(ctx, "completed", MsgNoCompleted, reminder.Completed)
}

func (s *ReminderService) NotCompletedReminders(ctx context.Context) ([]reminder.Reminder, error) {
	return s.filtered(ctx, "not-completed", MsgNoNotCompleted, reminder.NotCompleted)
}

// сравнивается префикс YYYY-MM-DD с текущей датой в часовом поясе сервиса
func (s *ReminderService) DueTodayReminders(ctx context.Context) ([]reminder.Reminder, error) {
	today := s.Today()
	return s.filtered(ctx, "due-today", MsgNoneDueToday, func(r reminder.Reminder) bool {
		return r.DueOn(today)
	})
}

func (s *ReminderService) Today() string {
	return s.now().In(s.loc).Format(reminder.DateLayout)
}

func (s *ReminderService) filtered(ctx context.Context, listing, emptyMsg string, pred func(reminder.Reminder) bool) ([]reminder.Reminder, error) {
	reminders, err := s.repo.Filter(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("фильтрация напоминаний (%s): %w", listing, err)
	}
	return nonEmpty(reminders, listing, emptyMsg)
}

func (s *ReminderService) lookupError(id string, err error) error {
	if errors.Is(err, rep.ErrNotFound) {
		logger.Info("Service: Напоминание не найдено", zap.String("target_id", id))
		return NewNotFound(id, err)
	}
	return fmt.Errorf("получение напоминания %s: %w", id, err)
}

func nonEmpty(reminders []reminder.Reminder, listing, emptyMsg string) ([]reminder.Reminder, error) {
	if len(reminders) == 0 {
		return nil, NewEmptyResult(listing, emptyMsg)
	}
	return reminders, nil
}
