package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// литеральные маршруты регистрируются до /{id}
func NewRouter(h ReminderHandler, middlewares ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responseWithError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responseWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/reminders", func(r chi.Router) {
		r.Get("/", h.GetAllReminders) // GET /reminders
		r.Post("/", h.PostReminder)   // POST /reminders

		// литеральные пути регистрируются раньше /{id}
		r.Get("/completed", h.GetCompletedReminders)        // GET /reminders/completed
		r.Get("/not-completed", h.GetNotCompletedReminders) // GET /reminders/not-completed
		r.Get("/due-today", h.GetDueTodayReminders)         // GET /reminders/due-today

		r.Get("/{id}", h.GetReminderByID)       // GET /reminders/{id}
		r.Patch("/{id}", h.PatchReminderByID)   // PATCH /reminders/{id}
		r.Delete("/{id}", h.DeleteReminderByID) // DELETE /reminders/{id}

		r.Post("/{id}/mark-completed", h.MarkCompleted)     // POST /reminders/{id}/mark-completed
		r.Post("/{id}/unmark-completed", h.UnmarkCompleted) // POST /reminders/{id}/unmark-completed
	})

	r.Get("/health", h.HealthCheck)

	return r
}
