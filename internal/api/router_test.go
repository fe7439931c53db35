package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/logger"
)

func newTestRouter(t *testing.T, ready func(ctx context.Context) error, logs io.Writer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if logs == nil {
		logs = io.Discard
	}
	log := logger.New(logger.Config{Output: logs})
	engine := booking.NewEngine(calendar.New(calendar.FixedClock{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}), 30, 3)
	return NewRouter(Config{
		Logger:         log,
		BookingService: booking.NewService(booking.NewMemoryRepository(), engine, nil, log),
		Ready:          ready,
	})
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t, nil, nil)

	for _, path := range []string{"/livez", "/readyz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestReadyzReportsStorageFailure(t *testing.T) {
	r := newTestRouter(t, func(ctx context.Context) error { return errors.New("db unreachable") }, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "db unreachable")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDIsPropagated(t *testing.T) {
	var logs bytes.Buffer
	r := newTestRouter(t, nil, &logs)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(`{"checkIn":"2026-03-11","checkOut":"2026-03-12"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))

	entries := map[string]map[string]any{}
	for _, line := range bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		entries[entry["msg"].(string)] = entry
	}
	require.Contains(t, entries, "booking created")
	require.Contains(t, entries, "http")
	assert.Equal(t, "req-123", entries["booking created"]["request_id"])
	assert.Equal(t, "req-123", entries["http"]["request_id"])
	assert.Equal(t, "/v1/bookings", entries["http"]["path"])
}

func TestRequestIDIsGenerated(t *testing.T) {
	r := newTestRouter(t, nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/livez", nil))

	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestRequestIDReachesHandlerContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = logger.RequestIDFromContext(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "abc", seen)
}

func TestAllowedOrigins(t *testing.T) {
	assert.Contains(t, allowedOrigins(false, ""), "http://localhost:8081")
	assert.Equal(t, []string{"https://hotel.example", "https://admin.hotel.example"},
		allowedOrigins(true, "https://hotel.example, https://admin.hotel.example"))
	assert.Empty(t, allowedOrigins(true, ""))
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := booking.NewEngine(calendar.New(calendar.FixedClock{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}), 30, 3)
	r := NewRouter(Config{
		IsProduction:   true,
		ProdOrigins:    "https://hotel.example",
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		BookingService: booking.NewService(booking.NewMemoryRepository(), engine, nil, nil),
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/bookings", nil)
	req.Header.Set("Origin", "https://hotel.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://hotel.example", w.Header().Get("Access-Control-Allow-Origin"))
}
