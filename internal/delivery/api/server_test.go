package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pulse/config"
	apimiddleware "pulse/internal/delivery/api/middleware"
	"pulse/internal/delivery/api/response"
	"pulse/internal/delivery/api/router"
	"pulse/internal/delivery/api/router/handler"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	mockSvc "pulse/internal/mocks/service"
	mockUsecase "pulse/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService, *mockUsecase.MockBroadcastUsecase) {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockSvc.NewMockTokenService(t)
	broadcastUC := mockUsecase.NewMockBroadcastUsecase(t)

	e := newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		BroadcastHandler: handler.NewBroadcastHandler(handler.BroadcastHandlerParams{BroadcastUC: broadcastUC, Logger: logger}),
		AuthMiddleware:   apimiddleware.NewAuthMiddleware(tokenSvc),
	}).RegisterRoutes(e)

	return e, tokenSvc, broadcastUC
}

func TestAPIRoutes(t *testing.T) {
	t.Run("health is public", func(t *testing.T) {
		e, _, _ := newTestAPI(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("broadcast requests need a token", func(t *testing.T) {
		e, _, _ := newTestAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcast-requests", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(deliverycontext.HeaderXRequestID, "trace-9")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		assert.Equal(t, "trace-9", body.Meta.RequestID)
	})

	t.Run("validation errors list fields", func(t *testing.T) {
		e, tokenSvc, _ := newTestAPI(t)
		tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcast-requests",
			strings.NewReader(`{"title":"t","bloodType":"A+","location":{"latitude":10,"longitude":200}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body response.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, map[string]any{"location.longitude": "longitude"}, body.Error.Details)
	})

	t.Run("authenticated broadcast request is accepted", func(t *testing.T) {
		e, tokenSvc, broadcastUC := newTestAPI(t)
		tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{
			Name:             "Ann",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		}, nil).Once()
		broadcastUC.EXPECT().
			CreateBroadcastRequest(mock.Anything, mock.Anything, mock.Anything).
			Return(&entity.BroadcastRequest{ID: "req-1", AuthorID: "u1"}, nil).
			Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/broadcast-requests",
			strings.NewReader(`{"title":"t","bloodType":"A+","location":{"latitude":10,"longitude":20}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}
