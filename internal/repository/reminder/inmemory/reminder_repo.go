package inmemory

import (
	"context"
	"reminderTracker/internal/logger"
	"reminderTracker/internal/models/reminder"
	repo "reminderTracker/internal/repository"
	"sync"

	"go.uber.org/zap"
)

// порядок вставки сохраняется, поиск линейный, при повторе id побеждает первая запись
type ReminderStorage struct {
	reminders []*reminder.Reminder
	mtx       *sync.RWMutex
	uniqueIDs bool
}

type StorageOption func(*ReminderStorage)

// WithUniqueIDs: Insert отклоняет уже существующий id
func WithUniqueIDs(unique bool) StorageOption {
	return func(s *ReminderStorage) {
		s.uniqueIDs = unique
	}
}

func NewReminderStorage(options ...StorageOption) *ReminderStorage {
	s := &ReminderStorage{
		reminders: []*reminder.Reminder{},
		mtx:       &sync.RWMutex{},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *ReminderStorage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Хранилище доступно", zap.Int("reminders", s.Count(ctx)))
	return nil
}

func (s *ReminderStorage) Count(ctx context.Context) int {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return len(s.reminders)
}

func (s *ReminderStorage) Insert(ctx context.Context, toInsert reminder.Reminder) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.uniqueIDs && s.indexOf(toInsert.ID) != -1 {
		return repo.ErrAlreadyExists
	}

	stored := toInsert.Clone()
	s.reminders = append(s.reminders, &stored)
	return nil
}

func (s *ReminderStorage) FindByID(ctx context.Context, id string) (reminder.Reminder, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	ind := s.indexOf(id)
	if ind == -1 {
		return reminder.Reminder{}, repo.ErrNotFound
	}
	return s.reminders[ind].Clone(), nil
}

// Modify меняет первую запись с этим id под блокировкой и возвращает копию
func (s *ReminderStorage) Modify(ctx context.Context, id string, fn func(*reminder.Reminder)) (reminder.Reminder, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind == -1 {
		return reminder.Reminder{}, repo.ErrNotFound
	}

	fn(s.reminders[ind])
	return s.reminders[ind].Clone(), nil
}

// удаляется только первое совпадение
func (s *ReminderStorage) RemoveByID(ctx context.Context, id string) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ind := s.indexOf(id)
	if ind == -1 {
		return false, nil
	}

	s.reminders = append(s.reminders[:ind], s.reminders[ind+1:]...)
	return true, nil
}

func (s *ReminderStorage) All(ctx context.Context) ([]reminder.Reminder, error) {
	return s.Filter(ctx, func(reminder.Reminder) bool { return true })
}

func (s *ReminderStorage) Filter(ctx context.Context, pred func(reminder.Reminder) bool) ([]reminder.Reminder, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []reminder.Reminder{}
	for _, r := range s.reminders {
		if pred(*r) {
			res = append(res, r.Clone())
		}
	}
	return res, nil
}

func (s *ReminderStorage) indexOf(id string) int {
	for ind, r := range s.reminders {
		if r.ID == id {
			return ind
		}
	}
	return -1
}
