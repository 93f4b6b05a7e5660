package service

import (
	"context"
	"reminderTracker/internal/models/reminder"
)

type ReminderRepository interface {
	HealthCheck(context.Context) error
	Count(context.Context) int
	Insert(context.Context, reminder.Reminder) error
	FindByID(context.Context, string) (reminder.Reminder, error)
	Modify(context.Context, string, func(*reminder.Reminder)) (reminder.Reminder, error)
	RemoveByID(context.Context, string) (bool, error)
	All(context.Context) ([]reminder.Reminder, error)
	Filter(context.Context, func(reminder.Reminder) bool) ([]reminder.Reminder, error)
}
