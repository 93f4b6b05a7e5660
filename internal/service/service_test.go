package service_test

import (
	"context"
	"errors"
	"reminderTracker/internal/models/reminder"
	"reminderTracker/internal/repository"
	"reminderTracker/internal/repository/reminder/inmemory"
	"reminderTracker/internal/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReminderRepository - мок репозитория
type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReminderRepository) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockReminderRepository) Insert(ctx context.Context, r reminder.Reminder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReminderRepository) FindByID(ctx context.Context, id string) (reminder.Reminder, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(reminder.Reminder), args.Error(1)
}

func (m *MockReminderRepository) Modify(ctx context.Context, id string, fn func(*reminder.Reminder)) (reminder.Reminder, error) {
	args := m.Called(ctx, id, fn)
	return args.Get(0).(reminder.Reminder), args.Error(1)
}

func (m *MockReminderRepository) RemoveByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReminderRepository) All(ctx context.Context) ([]reminder.Reminder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reminder.Reminder), args.Error(1)
}

func (m *MockReminderRepository) Filter(ctx context.Context, pred func(reminder.Reminder) bool) ([]reminder.Reminder, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reminder.Reminder), args.Error(1)
}

var _ service.ReminderRepository = (*MockReminderRepository)(nil)

func assertBusinessError(t *testing.T, err error, code, message string) {
	t.Helper()
	var businessErr *service.BusinessError
	require.True(t, errors.As(err, &businessErr), "expected BusinessError, got %v", err)
	assert.Equal(t, code, businessErr.Code)
	assert.Equal(t, message, businessErr.Message)
}

// TestReminderService_HealthCheck тестирует HealthCheck
func TestReminderService_HealthCheck(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockReminderRepository)
		expectError bool
	}{
		{
			name: "success - health check passes",
			setupMock: func(m *MockReminderRepository) {
				m.On("HealthCheck", mock.Anything).Return(nil)
			},
		},
		{
			name: "error - health check fails",
			setupMock: func(m *MockReminderRepository) {
				m.On("HealthCheck", mock.Anything).Return(errors.New("storage unavailable"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockReminderRepository)
			tt.setupMock(mockRepo)

			svc := service.NewReminderService(mockRepo)
			err := svc.HealthCheck(context.Background())

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "проверка здоровья сервиса")
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestReminderService_CreateReminder тестирует создание напоминания
func TestReminderService_CreateReminder(t *testing.T) {
	ctx := context.Background()
	toCreate := reminder.Reminder{ID: "1", Title: "T", DueDate: "2024-01-01"}

	tests := []struct {
		name     string
		repoErr  error
		checkErr func(*testing.T, error)
	}{
		{
			name: "success",
		},
		{
			name:    "duplicate id",
			repoErr: repository.ErrAlreadyExists,
			checkErr: func(t *testing.T, err error) {
				assertBusinessError(t, err, service.CodeAlreadyExists, service.MsgAlreadyExists)
				assert.ErrorIs(t, err, repository.ErrAlreadyExists)
			},
		},
		{
			name:    "unexpected repository error",
			repoErr: errors.New("boom"),
			checkErr: func(t *testing.T, err error) {
				var businessErr *service.BusinessError
				assert.False(t, errors.As(err, &businessErr))
				assert.Contains(t, err.Error(), "boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockReminderRepository)
			mockRepo.On("Insert", mock.Anything, toCreate).Return(tt.repoErr)

			svc := service.NewReminderService(mockRepo)
			created, err := svc.CreateReminder(ctx, toCreate)

			if tt.checkErr != nil {
				require.Error(t, err)
				assert.Nil(t, created)
				tt.checkErr(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, toCreate, *created)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestReminderService_GetReminder тестирует получение напоминания
func TestReminderService_GetReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockReminderRepository)
		stored := reminder.Reminder{ID: "1", Title: "T", DueDate: "2024-01-01"}
		mockRepo.On("FindByID", mock.Anything, "1").Return(stored, nil)

		svc := service.NewReminderService(mockRepo)
		found, err := svc.GetReminder(ctx, "1")

		require.NoError(t, err)
		assert.Equal(t, stored, *found)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockReminderRepository)
		mockRepo.On("FindByID", mock.Anything, "x").Return(reminder.Reminder{}, repository.ErrNotFound)

		svc := service.NewReminderService(mockRepo)
		_, err := svc.GetReminder(ctx, "x")

		assertBusinessError(t, err, service.CodeNotFound, service.MsgNotFound)
		mockRepo.AssertExpectations(t)
	})
}

// TestReminderService_UpdateReminder тестирует частичное обновление
func TestReminderService_UpdateReminder(t *testing.T) {
	ctx := context.Background()

	t.Run("options applied in place", func(t *testing.T) {
		storage := inmemory.NewReminderStorage()
		description := "Desc"
		require.NoError(t, storage.Insert(ctx, reminder.Reminder{ID: "1", Title: "Old", Description: &description, DueDate: "2024-01-01"}))

		svc := service.NewReminderService(storage)
		updated, err := svc.UpdateReminder(ctx, "1",
			reminder.WithTitle("New"),
			reminder.WithDescription(""),
			reminder.WithCompleted(true),
		)

		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
		assert.Equal(t, "Desc", *updated.Description)
		assert.True(t, updated.IsCompleted)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockReminderRepository)
		mockRepo.On("Modify", mock.Anything, "x", mock.Anything).Return(reminder.Reminder{}, repository.ErrNotFound)

		svc := service.NewReminderService(mockRepo)
		_, err := svc.UpdateReminder(ctx, "x", reminder.WithTitle("New"))

		assertBusinessError(t, err, service.CodeNotFound, service.MsgNotFound)
		mockRepo.AssertExpectations(t)
	})
}

// TestReminderService_MarkUnmark тестирует переключение статуса
func TestReminderService_MarkUnmark(t *testing.T) {
	ctx := context.Background()
	storage := inmemory.NewReminderStorage()
	require.NoError(t, storage.Insert(ctx, reminder.Reminder{ID: "1", Title: "T", DueDate: "2024-01-01"}))
	svc := service.NewReminderService(storage)

	for i := 0; i < 2; i++ {
		marked, err := svc.MarkCompleted(ctx, "1")
		require.NoError(t, err)
		assert.True(t, marked.IsCompleted)
	}

	unmarked, err := svc.UnmarkCompleted(ctx, "1")
	require.NoError(t, err)
	assert.False(t, unmarked.IsCompleted)

	_, err = svc.MarkCompleted(ctx, "missing")
	assertBusinessError(t, err, service.CodeNotFound, service.MsgNotFound)

	_, err = svc.UnmarkCompleted(ctx, "missing")
	assertBusinessError(t, err, service.CodeNotFound, service.MsgNotFound)
}

// TestReminderService_DeleteReminder тестирует удаление
func TestReminderService_DeleteReminder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		removed  bool
		repoErr  error
		wantCode string
		wantErr  bool
	}{
		{name: "success", removed: true},
		{name: "not found", removed: false, wantErr: true, wantCode: service.CodeNotFound},
		{name: "repository error", repoErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockReminderRepository)
			mockRepo.On("RemoveByID", mock.Anything, "1").Return(tt.removed, tt.repoErr)

			svc := service.NewReminderService(mockRepo)
			err := svc.DeleteReminder(ctx, "1")

			if !tt.wantErr {
				assert.NoError(t, err)
			} else if tt.wantCode != "" {
				assertBusinessError(t, err, tt.wantCode, service.MsgNotFound)
			} else {
				assert.ErrorContains(t, err, "boom")
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestReminderService_Listings тестирует выборки и сообщения о пустом результате
func TestReminderService_Listings(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		method  func(*service.ReminderService) ([]reminder.Reminder, error)
		mockOn  string
		message string
	}{
		{
			name:    "all",
			method:  func(s *service.ReminderService) ([]reminder.Reminder, error) { return s.ListReminders(ctx) },
			mockOn:  "All",
			message: service.MsgNoReminders,
		},
		{
			name:    "completed",
			method:  func(s *service.ReminderService) ([]reminder.Reminder, error) { return s.CompletedReminders(ctx) },
			mockOn:  "Filter",
			message: service.MsgNoCompleted,
		},
		{
			name:    "not completed",
			method:  func(s *service.ReminderService) ([]reminder.Reminder, error) { return s.NotCompletedReminders(ctx) },
			mockOn:  "Filter",
			message: service.MsgNoNotCompleted,
		},
		{
			name:    "due today",
			method:  func(s *service.ReminderService) ([]reminder.Reminder, error) { return s.DueTodayReminders(ctx) },
			mockOn:  "Filter",
			message: service.MsgNoneDueToday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" - empty", func(t *testing.T) {
			mockRepo := new(MockReminderRepository)
			if tt.mockOn == "All" {
				mockRepo.On("All", mock.Anything).Return([]reminder.Reminder{}, nil)
			} else {
				mockRepo.On("Filter", mock.Anything, mock.Anything).Return([]reminder.Reminder{}, nil)
			}

			svc := service.NewReminderService(mockRepo)
			result, err := tt.method(&svc)

			assert.Nil(t, result)
			assertBusinessError(t, err, service.CodeEmptyResult, tt.message)
			mockRepo.AssertExpectations(t)
		})

		t.Run(tt.name+" - found", func(t *testing.T) {
			mockRepo := new(MockReminderRepository)
			found := []reminder.Reminder{{ID: "1"}, {ID: "2"}}
			if tt.mockOn == "All" {
				mockRepo.On("All", mock.Anything).Return(found, nil)
			} else {
				mockRepo.On("Filter", mock.Anything, mock.Anything).Return(found, nil)
			}

			svc := service.NewReminderService(mockRepo)
			result, err := tt.method(&svc)

			require.NoError(t, err)
			assert.Equal(t, found, result)
			mockRepo.AssertExpectations(t)
		})
	}
}

// TestReminderService_DueToday тестирует выборку на сегодня с подменённым временем
func TestReminderService_DueToday(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	storage := inmemory.NewReminderStorage()
	for _, r := range []reminder.Reminder{
		{ID: "date", Title: "T", DueDate: "2024-03-10"},
		{ID: "datetime", Title: "T", DueDate: "2024-03-10T08:00:00Z"},
		{ID: "tomorrow", Title: "T", DueDate: "2024-03-11"},
		{ID: "yesterday", Title: "T", DueDate: "2024-03-09T23:59:59Z"},
	} {
		require.NoError(t, storage.Insert(ctx, r))
	}

	t.Run("server location", func(t *testing.T) {
		svc := service.NewReminderService(storage,
			service.WithClock(func() time.Time { return now }),
			service.WithLocation(time.UTC))

		assert.Equal(t, "2024-03-10", svc.Today())

		due, err := svc.DueTodayReminders(ctx)
		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, "date", due[0].ID)
		assert.Equal(t, "datetime", due[1].ID)
	})

	t.Run("calendar date follows the configured location", func(t *testing.T) {
		// 15:30 UTC is already the next day at UTC+10
		svc := service.NewReminderService(storage,
			service.WithClock(func() time.Time { return now }),
			service.WithLocation(time.FixedZone("UTC+10", 10*60*60)))

		due, err := svc.DueTodayReminders(ctx)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, "tomorrow", due[0].ID)
	})

	t.Run("nothing due", func(t *testing.T) {
		svc := service.NewReminderService(storage,
			service.WithClock(func() time.Time { return now.AddDate(1, 0, 0) }),
			service.WithLocation(time.UTC))

		_, err := svc.DueTodayReminders(ctx)
		assertBusinessError(t, err, service.CodeEmptyResult, service.MsgNoneDueToday)
	})
}
