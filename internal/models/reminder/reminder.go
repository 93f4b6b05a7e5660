package reminder

import "strings"

type Reminder struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// nil - поле не передавалось, пустая строка сохраняется как есть
	Description *string `json:"description,omitempty"`
	DueDate     string  `json:"dueDate"`
	IsCompleted bool    `json:"isCompleted"`
}

// календарная дата в начале dueDate
const DateLayout = "2006-01-02"

// Clone копирует запись вместе с описанием
func (r Reminder) Clone() Reminder {
	if r.Description != nil {
		description := *r.Description
		r.Description = &description
	}
	return r
}

// DueOn: dueDate начинается с даты date (YYYY-MM-DD)
func (r Reminder) DueOn(date string) bool {
	return date != "" && strings.HasPrefix(r.DueDate, date)
}

func Completed(r Reminder) bool {
	return r.IsCompleted
}

func NotCompleted(r Reminder) bool {
	return !r.IsCompleted
}
