package service

import "time"

type ServiceOption func(*ReminderService)

// подменяет time.Now для due-today
func WithClock(now func() time.Time) ServiceOption {
	return func(s *ReminderService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLocation(loc *time.Location) ServiceOption {
	return func(s *ReminderService) {
		if loc != nil {
			s.loc = loc
		}
	}
}
