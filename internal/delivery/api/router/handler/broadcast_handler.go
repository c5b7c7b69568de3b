// Package handler contains the API endpoints that create broadcast requests and chat messages.
package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/api/response"
	deliverycontext "pulse/internal/delivery/context"
	"pulse/internal/domain/entity"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/errors"
	"pulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BroadcastHandlerParams holds dependencies for BroadcastHandler, injected by Fx.
type BroadcastHandlerParams struct {
	fx.In

	BroadcastUC usecase.BroadcastUsecase
	Logger      *slog.Logger
}

// BroadcastHandler serves the endpoints that feed the notifier's event source.
type BroadcastHandler struct {
	broadcastUC usecase.BroadcastUsecase
	logger      *slog.Logger
}

// NewBroadcastHandler is the constructor for BroadcastHandler
func NewBroadcastHandler(params BroadcastHandlerParams) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastUC: params.BroadcastUC,
		logger:      params.Logger,
	}
}

// LocationRequest is a point in decimal degrees.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// CreateBroadcastRequest represents the request body for a new broadcast request
type CreateBroadcastRequest struct {
	Title     string           `json:"title" validate:"required,max=200"`
	BloodType string           `json:"bloodType" validate:"required,max=16"`
	Location  *LocationRequest `json:"location" validate:"omitempty"`
}

// SendChatMessageRequest represents the request body for a chat message
type SendChatMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// CreateBroadcastRequest accepts a broadcast request and publishes it for proximity fan-out.
// A request without a location is accepted; the notifier ends its pass without sending.
func (h *BroadcastHandler) CreateBroadcastRequest(c echo.Context) error {
	var req CreateBroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast request input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.CreateBroadcastInput{
		Title:     req.Title,
		BloodType: req.BloodType,
	}
	if req.Location != nil {
		input.Location = &entity.Coordinate{
			Latitude:  *req.Location.Latitude,
			Longitude: *req.Location.Longitude,
		}
	}

	created, err := h.broadcastUC.CreateBroadcastRequest(c.Request().Context(), authorFrom(c), input)
	if err != nil {
		return errors.Wrap(err, "failed to create broadcast request")
	}

	return response.Accepted(c, created)
}

// SendChatMessage appends a message to a conversation and publishes it for participant notification.
func (h *BroadcastHandler) SendChatMessage(c echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("conversation id is required")
	}

	var req SendChatMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat message input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.broadcastUC.SendChatMessage(c.Request().Context(), authorFrom(c), &usecase.SendChatMessageInput{
		ConversationID: conversationID,
		Text:           req.Text,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send chat message")
	}

	return response.Success(c, http.StatusCreated, message)
}

func authorFrom(c echo.Context) usecase.Author {
	return usecase.Author{
		ID:   deliverycontext.GetUserID(c),
		Name: deliverycontext.GetUserName(c),
	}
}
