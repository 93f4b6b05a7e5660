package middleware

import (
	"fmt"
	"net/http"
	"reminderTracker/internal/logger"
	"runtime/debug"

	"go.uber.org/zap"
)

// Recover отвечает 500 вместо обрыва соединения при панике в обработчике
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.Error("HTTP: Паника в обработчике", fmt.Errorf("%v", rec),
				zap.String("request_id", GetRequestID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.ByteString("stack", debug.Stack()),
			)

			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": "Internal server error",
			})
		}()

		next.ServeHTTP(w, r)
	})
}
