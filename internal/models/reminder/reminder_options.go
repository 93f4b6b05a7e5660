package reminder

// Option - частичное обновление записи; конструктор возвращает nil, если значение не применяется
type Option func(*Reminder)

// пустая строка не перезаписывает существующее значение
func WithTitle(title string) Option {
	if title == "" {
		return nil
	}
	return func(r *Reminder) {
		r.Title = title
	}
}

func WithDescription(description string) Option {
	if description == "" {
		return nil
	}
	return func(r *Reminder) {
		r.Description = &description
	}
}

func WithDueDate(dueDate string) Option {
	if dueDate == "" {
		return nil
	}
	return func(r *Reminder) {
		r.DueDate = dueDate
	}
}

// false тоже применяется
func WithCompleted(completed bool) Option {
	return func(r *Reminder) {
		r.IsCompleted = completed
	}
}

func Apply(r *Reminder, options ...Option) {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
}
