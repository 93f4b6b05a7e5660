package middleware

import (
	"net/http"
	"reminderTracker/internal/logger"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

type window struct {
	count   int
	resetAt time.Time
}

// fixedWindow считает запросы клиента в окне фиксированной длины
type fixedWindow struct {
	mtx     sync.Mutex
	limit   int
	length  time.Duration
	clients map[string]*window
	sweepAt time.Time
}

func newFixedWindow(limit int, length time.Duration) *fixedWindow {
	return &fixedWindow{
		limit:   limit,
		length:  length,
		clients: make(map[string]*window),
	}
}

// allow учитывает запрос и возвращает остаток и время сброса окна
func (fw *fixedWindow) allow(client string, now time.Time) (remaining int, resetAt time.Time, ok bool) {
	fw.mtx.Lock()
	defer fw.mtx.Unlock()

	fw.sweep(now)

	win, exists := fw.clients[client]
	if !exists || !now.Before(win.resetAt) {
		win = &window{resetAt: now.Add(fw.length)}
		fw.clients[client] = win
	}

	if win.count >= fw.limit {
		return 0, win.resetAt, false
	}
	win.count++
	return fw.limit - win.count, win.resetAt, true
}

// sweep удаляет истёкшие окна не чаще раза за окно
func (fw *fixedWindow) sweep(now time.Time) {
	if now.Before(fw.sweepAt) {
		return
	}
	for client, win := range fw.clients {
		if !now.Before(win.resetAt) {
			delete(fw.clients, client)
		}
	}
	fw.sweepAt = now.Add(fw.length)
}

// RateLimit ограничивает число запросов с одного IP в минуту; rpm <= 0 отключает
func RateLimit(rpm int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rpm <= 0 {
			return next
		}
		limiter := newFixedWindow(rpm, time.Minute)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			now := time.Now()

			remaining, resetAt, ok := limiter.allow(ip, now)
			if !ok {
				retryAfter := int(resetAt.Sub(now).Round(time.Second) / time.Second)
				logger.Warn("HTTP: Превышен лимит запросов",
					zap.String("client_ip", ip),
					zap.String("request_id", GetRequestID(r.Context())))

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeJSON(w, http.StatusTooManyRequests, map[string]any{
					"error":       "Too many requests",
					"retry_after": retryAfter,
					"request_id":  GetRequestID(r.Context()),
				})
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rpm))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}
