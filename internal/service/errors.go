package service

import "fmt"

const (
	CodeNotFound       = "NOT_FOUND"
	CodeEmptyResult    = "EMPTY_RESULT"
	CodeAlreadyExists  = "ALREADY_EXISTS"
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
)

// сообщения уходят клиенту как есть в поле "error"
const (
	MsgNotFound        = "Reminder not found"
	MsgAlreadyExists   = "Reminder already exists"
	MsgInvalidInput    = "Invalid input"
	MsgInvalidRequest  = "Invalid request"
	MsgNoReminders     = "No reminders found"
	MsgNoCompleted     = "No completed reminders"
	MsgNoNotCompleted  = "No uncompleted reminders"
	MsgNoneDueToday    = "No reminders due today"
	MsgReminderDeleted = "Reminder deleted"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}
	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}
	return busErr
}

func NewNotFound(id string, err error) *BusinessError {
	busErr := NewBusinessError(CodeNotFound, MsgNotFound, ToDetail("id", id))
	busErr.Err = err
	return busErr
}

func NewAlreadyExists(id string, err error) *BusinessError {
	busErr := NewBusinessError(CodeAlreadyExists, MsgAlreadyExists, ToDetail("id", id))
	busErr.Err = err
	return busErr
}

// пустая выборка, сообщение зависит от операции
func NewEmptyResult(listing, message string) *BusinessError {
	return NewBusinessError(CodeEmptyResult, message, ToDetail("listing", listing))
}

func NewValidationError(field, reason string) *BusinessError {
	return NewBusinessError(CodeValidation, MsgInvalidInput,
		ToDetail("field", field),
		ToDetail("reason", reason),
	)
}

func NewInvalidRequest(err error) *BusinessError {
	busErr := NewBusinessError(CodeInvalidRequest, MsgInvalidRequest)
	busErr.Err = err
	return busErr
}
