package handlers

import (
	"context"
	"net/http"
	"net/url"
	"reminderTracker/internal/handlers/dto"
	"reminderTracker/internal/logger"
	"reminderTracker/internal/models/reminder"
	"reminderTracker/internal/service"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const serviceName = "reminders"

type ReminderHandler struct {
	ReminderService Service
}

func NewReminderHandler(reminderService Service) ReminderHandler {
	return ReminderHandler{
		ReminderService: reminderService,
	}
}

func (h *ReminderHandler) PostReminder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неожиданный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))
	}

	request, err := decodeCreateRequest(w, r)
	if err != nil {
		respondError(w, r, err, "create_reminder")
		return
	}

	logger.Info("HTTP: Вызов сервиса создания напоминания")
	created, err := h.ReminderService.CreateReminder(r.Context(), request.ToReminder())
	if err != nil {
		respondError(w, r, err, "create_reminder")
		return
	}

	logger.Info("HTTP_OUT: Напоминание создано",
		zap.String("reminder_id", created.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, created)
}

func (h *ReminderHandler) GetReminderByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := reminderID(r)

	found, err := h.ReminderService.GetReminder(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "get_reminder")
		return
	}

	logger.Info("HTTP_OUT: Напоминание получено",
		zap.String("reminder_id", found.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, found)
}

func (h *ReminderHandler) PatchReminderByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := reminderID(r)

	// тело разбирается до поиска записи
	request, err := decodeUpdateRequest(w, r)
	if err != nil {
		respondError(w, r, err, "update_reminder")
		return
	}

	logger.Info("HTTP: запрос к сервису обновления данных", zap.String("reminder_id", id))

	updated, err := h.ReminderService.UpdateReminder(r.Context(), id, request.Options()...)
	if err != nil {
		respondError(w, r, err, "update_reminder")
		return
	}

	logger.Info("HTTP_OUT: Напоминание обновлено",
		zap.String("reminder_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, updated)
}

func (h *ReminderHandler) DeleteReminderByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := reminderID(r)

	if err := h.ReminderService.DeleteReminder(r.Context(), id); err != nil {
		respondError(w, r, err, "delete_reminder")
		return
	}

	logger.Info("HTTP_OUT: Напоминание удалено",
		zap.String("reminder_id", id),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithMessage(w, http.StatusOK, service.MsgReminderDeleted)
}

func (h *ReminderHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, true)
}

func (h *ReminderHandler) UnmarkCompleted(w http.ResponseWriter, r *http.Request) {
	h.setCompleted(w, r, false)
}

func (h *ReminderHandler) setCompleted(w http.ResponseWriter, r *http.Request, completed bool) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id := reminderID(r)

	var (
		updated *reminder.Reminder
		err     error
	)
	if completed {
		updated, err = h.ReminderService.MarkCompleted(r.Context(), id)
	} else {
		updated, err = h.ReminderService.UnmarkCompleted(r.Context(), id)
	}
	if err != nil {
		respondError(w, r, err, "set_completed")
		return
	}

	logger.Info("HTTP_OUT: Статус напоминания изменён",
		zap.String("reminder_id", id),
		zap.Bool("is_completed", updated.IsCompleted),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, updated)
}

func (h *ReminderHandler) GetAllReminders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "list_reminders", h.ReminderService.ListReminders)
}

func (h *ReminderHandler) GetCompletedReminders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "list_completed", h.ReminderService.CompletedReminders)
}

func (h *ReminderHandler) GetNotCompletedReminders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "list_not_completed", h.ReminderService.NotCompletedReminders)
}

func (h *ReminderHandler) GetDueTodayReminders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "list_due_today", h.ReminderService.DueTodayReminders)
}

func (h *ReminderHandler) list(w http.ResponseWriter, r *http.Request, operation string, fetch func(context.Context) ([]reminder.Reminder, error)) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	reminders, err := fetch(r.Context())
	if err != nil {
		respondError(w, r, err, operation)
		return
	}

	logger.Info("HTTP_OUT: Напоминания получены",
		zap.String("operation", operation),
		zap.Int("count", len(reminders)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, reminders)
}

func (h *ReminderHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := h.ReminderService.HealthCheck(r.Context()); err != nil {
		logger.Error("HTTP: Сервис недоступен", err)
		responseWithJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "unavailable",
			Service: serviceName,
		})
		return
	}

	responseWithJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Service:   serviceName,
		Reminders: h.ReminderService.CountReminders(r.Context()),
	})
}

// chi сопоставляет по RawPath, поэтому id может прийти в экранированном виде
func reminderID(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}
