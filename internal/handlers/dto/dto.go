package dto

import "reminderTracker/internal/models/reminder"

// указатели отличают отсутствующее поле от нулевого значения
type CreateReminderRequest struct {
	ID          *string `json:"id" validate:"required,min=1"`
	Title       *string `json:"title" validate:"required,min=1"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate" validate:"required,min=1"`
	IsCompleted *bool   `json:"isCompleted" validate:"required"`
}

// вызывать только после валидации
func (c CreateReminderRequest) ToReminder() reminder.Reminder {
	r := reminder.Reminder{
		ID:          *c.ID,
		Title:       *c.Title,
		Description: c.Description,
		DueDate:     *c.DueDate,
		IsCompleted: *c.IsCompleted,
	}
	return r.Clone()
}

// строки применяются только непустые, isCompleted - только булево
type UpdateReminderRequest map[string]any

func (u UpdateReminderRequest) Options() []reminder.Option {
	var options []reminder.Option

	if title, ok := u["title"].(string); ok {
		options = append(options, reminder.WithTitle(title))
	}
	if description, ok := u["description"].(string); ok {
		options = append(options, reminder.WithDescription(description))
	}
	if dueDate, ok := u["dueDate"].(string); ok {
		options = append(options, reminder.WithDueDate(dueDate))
	}
	if completed, ok := u["isCompleted"].(bool); ok {
		options = append(options, reminder.WithCompleted(completed))
	}

	return options
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Reminders int    `json:"reminders"`
}
