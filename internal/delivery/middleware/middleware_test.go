package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medlocator/config"
	deliverycontext "medlocator/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/clinics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var ctxID string
	var hasLogger bool
	err := mw.Process(func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return nil
	})(c)
	require.NoError(t, err)

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxID)
	assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
	assert.True(t, hasLogger)
}

func TestRequestIDMiddleware_ClientID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{name: "well formed", header: "abc-123", reused: true},
		{name: "contains space", header: "abc 123", reused: false},
		{name: "too long", header: strings.Repeat("a", maxRequestIDLength+1), reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
			require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.reused {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware_LevelsByStatus(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		handler   echo.HandlerFunc
		wantLevel string
	}{
		{
			name:      "success hidden outside debug",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "",
		},
		{
			name:      "success logged in debug",
			debug:     true,
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "INFO",
		},
		{
			name:      "client error",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusNotFound) },
			wantLevel: "WARN",
		},
		{
			name:      "returned error",
			handler:   func(echo.Context) error { return echo.NewHTTPError(http.StatusBadGateway) },
			wantLevel: "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/medicines/search?q=x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := NewLoggerMiddleware(logger, cfg)
			require.NoError(t, mw.Handle(tt.handler)(c))

			if tt.wantLevel == "" {
				assert.Zero(t, buf.Len())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "q=x", entry["query"])
		})
	}
}

func TestLoggerMiddleware_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Zero(t, buf.Len())
}
