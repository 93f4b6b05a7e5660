package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reminderTracker/internal/handlers/dto"
	"reminderTracker/internal/service"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

var errNullBody = errors.New("тело запроса null")

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == target
}

// тело должно быть одним корректным JSON значением, не null
func readJSONBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, service.NewInvalidRequest(fmt.Errorf("чтение тела: %w", err))
	}
	if !json.Valid(body) {
		return nil, service.NewInvalidRequest(errors.New("тело не является корректным JSON"))
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, service.NewInvalidRequest(errNullBody)
	}
	return body, nil
}

// битый JSON - "Invalid request", отсутствующие или неверные поля - "Invalid input"
func decodeCreateRequest(w http.ResponseWriter, r *http.Request) (dto.CreateReminderRequest, error) {
	var request dto.CreateReminderRequest

	body, err := readJSONBody(w, r)
	if err != nil {
		return request, err
	}

	if err := json.Unmarshal(body, &request); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return request, service.NewValidationError(typeErr.Field, "wrong type "+typeErr.Value)
		}
		return request, service.NewInvalidRequest(err)
	}

	if err := validate.Struct(request); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return request, service.NewValidationError(fieldErrs[0].Field(), fieldErrs[0].Tag())
		}
		return request, service.NewValidationError("", err.Error())
	}

	return request, nil
}

// decodeUpdateRequest: валидный JSON, не являющийся объектом, ничего не меняет
func decodeUpdateRequest(w http.ResponseWriter, r *http.Request) (dto.UpdateReminderRequest, error) {
	body, err := readJSONBody(w, r)
	if err != nil {
		return nil, err
	}

	var request dto.UpdateReminderRequest
	if err := json.Unmarshal(body, &request); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return dto.UpdateReminderRequest{}, nil
		}
		return nil, service.NewInvalidRequest(err)
	}
	return request, nil
}
