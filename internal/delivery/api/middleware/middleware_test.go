package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pulse/internal/delivery/api/response"
	"pulse/internal/delivery/api/validator"
	deliverycontext "pulse/internal/delivery/context"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"
	mockSvc "pulse/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcast-requests", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}

	t.Run("stores the caller identity", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
			Name:             "Ann",
			Roles:            []string{"donor"},
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		}, nil).Once()

		c, rec := newTestContext("Bearer good")
		require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "u1", deliverycontext.GetUserID(c))
		assert.Equal(t, "Ann", deliverycontext.GetUserName(c))
		assert.Equal(t, []string{"donor"}, deliverycontext.GetRoles(c))
	})

	t.Run("missing header", func(t *testing.T) {
		c, _ := newTestContext("")
		err := NewAuthMiddleware(mockSvc.NewMockTokenService(t)).Authenticate(next)(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		c, _ := newTestContext("Basic dXNlcjpwYXNz")
		err := NewAuthMiddleware(mockSvc.NewMockTokenService(t)).Authenticate(next)(c)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return(nil, jwt.ErrTokenExpired).Once()

		c, _ := newTestContext("Bearer bad")
		err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	next := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c, _ := newTestContext("")
	c.Set(deliverycontext.KeyRoles, []string{"donor"})
	require.NoError(t, m.RequireRole("donor")(next)(c))

	c, _ = newTestContext("")
	assert.ErrorIs(t, m.RequireRole("admin")(next)(c), domainerrors.ErrForbidden)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
		t.Helper()

		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		return body
	}

	t.Run("app error", func(t *testing.T) {
		c, rec := newTestContext("")
		m.HandleHTTPError(errors.Wrap(domainerrors.ErrNotParticipant, "send chat message"), c)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_PARTICIPANT", decode(t, rec).Error.Code)
	})

	t.Run("validation error carries fields", func(t *testing.T) {
		type payload struct {
			Title string `json:"title" validate:"required"`
		}
		err := validator.New().Validate(&payload{})
		require.Error(t, err)

		c, rec := newTestContext("")
		m.HandleHTTPError(err, c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, map[string]any{"title": "required"}, body.Error.Details)
	})

	t.Run("echo error", func(t *testing.T) {
		c, rec := newTestContext("")
		m.HandleHTTPError(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", decode(t, rec).Error.Code)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		c, rec := newTestContext("")
		m.HandleHTTPError(errors.New("pq: connection refused"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "connection refused")
	})
}
