package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/config"
	deliverycontext "pulse/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	run := func(t *testing.T, header string) (string, string) {
		t.Helper()

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		if header != "" {
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var fromCtx string
		err := m.Process(func(c echo.Context) error {
			fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return c.NoContent(http.StatusOK)
		})(c)
		require.NoError(t, err)

		return fromCtx, rec.Header().Get(deliverycontext.HeaderXRequestID)
	}

	t.Run("keeps the caller's ID", func(t *testing.T) {
		fromCtx, fromHeader := run(t, "trace-1")

		assert.Equal(t, "trace-1", fromCtx)
		assert.Equal(t, "trace-1", fromHeader)
	})

	t.Run("generates one when missing", func(t *testing.T) {
		fromCtx, fromHeader := run(t, "")

		assert.NotEmpty(t, fromCtx)
		assert.Equal(t, fromCtx, fromHeader)
	})

	t.Run("replaces an ID with control characters", func(t *testing.T) {
		fromCtx, _ := run(t, "abc\tdef")

		assert.NotEqual(t, "abc\tdef", fromCtx)
	})

	t.Run("replaces an oversized ID", func(t *testing.T) {
		long := strings.Repeat("x", maxRequestIDLength+1)
		fromCtx, _ := run(t, long)

		assert.NotEqual(t, long, fromCtx)
		assert.LessOrEqual(t, len(fromCtx), maxRequestIDLength)
	})
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newMiddleware := func(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg), &buf
	}

	serve := func(m *LoggerMiddleware, status int) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/push/broadcast-requests", nil), httptest.NewRecorder())
		c.Set(deliverycontext.KeyUserID, "u1")
		_ = m.Handle(func(c echo.Context) error {
			return c.NoContent(status)
		})(c)
	}

	t.Run("quiet on success outside debug", func(t *testing.T) {
		m, buf := newMiddleware(false)
		serve(m, http.StatusOK)

		assert.Empty(t, buf.String())
	})

	t.Run("logs server errors outside debug", func(t *testing.T) {
		m, buf := newMiddleware(false)
		serve(m, http.StatusServiceUnavailable)

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "status=503")
	})

	t.Run("logs every request in debug", func(t *testing.T) {
		m, buf := newMiddleware(true)
		serve(m, http.StatusOK)

		assert.Contains(t, buf.String(), "user_id=u1")
	})
}
