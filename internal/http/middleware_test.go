package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-insights/internal/shared/loggers"
	"restaurant-insights/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMwRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		provided  string
		assertion func(t *testing.T, requestID string)
	}{
		{
			name: "generates a ULID when absent",
			assertion: func(t *testing.T, requestID string) {
				assert.True(t, ulid.IsULID(requestID))
			},
		},
		{
			name:     "keeps the caller's ID",
			provided: "dashboard-req-42",
			assertion: func(t *testing.T, requestID string) {
				assert.Equal(t, "dashboard-req-42", requestID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := mwRequestID(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestID(r)
				assert.NotNil(t, loggers.Ctx(r.Context()))
			}))

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			if tt.provided != "" {
				req.Header.Set(headerRequestID, tt.provided)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			tt.assertion(t, seen)
		})
	}
}

func TestMwRecoverer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		panicValue any
	}{
		{name: "string panic", panicValue: "rollup exploded"},
		{name: "error panic", panicValue: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := mwRequestID(zerolog.Nop())(mwRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			})))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/restaurants/bistro-12/traffic/report", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			var errorResponse ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
			assert.NotEmpty(t, errorResponse.RequestID)
			assert.Equal(t, "internal", errorResponse.ErrorCategory)
			assert.Equal(t, "SYS_9000", errorResponse.ErrorCode)
			assert.Equal(t, "internal server error", errorResponse.ErrorDescription)
		})
	}
}

func TestMwRequestCompletionLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Get("/restaurants/{restaurantID}/traffic/report", errorHandlingAdapter(handlerFunc(func(w http.ResponseWriter, r *http.Request) error {
		return writeJSON(w, http.StatusOK, map[string]string{"timeframe": "last_7_days"})
	})))

	req := httptest.NewRequest(http.MethodGet, "/restaurants/bistro-12/traffic/report", nil)
	req.Header.Set(headerUserAgent, "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")
	req.Header.Set(headerRequestID, "req-log")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lastLine(buf.String())), &entry))
	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, "req-log", entry[loggers.FieldRequestID])
	assert.Equal(t, "GET", entry[loggers.FieldHttpMethod])
	assert.Equal(t, float64(http.StatusOK), entry[loggers.FieldHttpStatus])
	assert.Equal(t, "Firefox", entry[loggers.FieldUserAgent])
	assert.Equal(t, "bistro-12", entry[loggers.FieldRestaurantID])
	assert.NotContains(t, entry, loggers.FieldErrorCode)
}

func TestMwRequestCompletionLog_ErrorCode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	router := chi.NewRouter()
	setupMiddleware(router, logger)
	router.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/panic", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lastLine(buf.String())), &entry))
	assert.Equal(t, "request completed", entry["message"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry[loggers.FieldHttpStatus])
	assert.Equal(t, "SYS_9000", entry[loggers.FieldErrorCode])
	assert.NotContains(t, entry, loggers.FieldRestaurantID)
}

func TestUserAgentFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
		expected  string
	}{
		{name: "empty", userAgent: "", expected: ""},
		{
			name:      "chrome",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			expected:  "Chrome",
		},
		{
			name:      "firefox",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			expected:  "Firefox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			if tt.userAgent != "" {
				req.Header.Set(headerUserAgent, tt.userAgent)
			}
			assert.Equal(t, tt.expected, userAgentFamily(req))
		})
	}
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
