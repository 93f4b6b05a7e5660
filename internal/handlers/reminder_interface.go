package handlers

import (
	"context"
	"reminderTracker/internal/models/reminder"
)

type Service interface {
	HealthCheck(context.Context) error
	CountReminders(context.Context) int
	CreateReminder(context.Context, reminder.Reminder) (*reminder.Reminder, error)
	GetReminder(context.Context, string) (*reminder.Reminder, error)
	UpdateReminder(context.Context, string, ...reminder.Option) (*reminder.Reminder, error)
	DeleteReminder(context.Context, string) error
	MarkCompleted(context.Context, string) (*reminder.Reminder, error)
	UnmarkCompleted(context.Context, string) (*reminder.Reminder, error)
	ListReminders(context.Context) ([]reminder.Reminder, error)
	CompletedReminders(context.Context) ([]reminder.Reminder, error)
	NotCompletedReminders(context.Context) ([]reminder.Reminder, error)
	DueTodayReminders(context.Context) ([]reminder.Reminder, error)
}
