package notification

import (
	"context"

	"pulse/internal/domain/entity"
	"pulse/internal/domain/service"
	"pulse/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// messagingClient is the subset of *messaging.Client used for delivery
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client       messagingClient
	isInvalidErr func(error) bool
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(client *messaging.Client) service.PushService {
	return newFirebaseService(client)
}

func newFirebaseService(client messagingClient) *firebaseService {
	return &firebaseService{
		client:       client,
		isInvalidErr: isInvalidTokenError,
	}
}

// isInvalidTokenError reports errors that will recur for the same token
func isInvalidTokenError(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

// SendSingle sends a push notification to a single device token
func (s *firebaseService) SendSingle(ctx context.Context, token string, payload *entity.NotificationPayload) error {
	message := &messaging.Message{
		Token:        token,
		Notification: toNotification(payload),
		Data:         payload.Data,
		Android:      toAndroidConfig(payload),
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendMulticast sends a push notification to multiple device tokens (max 500 tokens)
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, payload *entity.NotificationPayload) (*entity.DeliveryReport, error) {
	if len(tokens) == 0 {
		return &entity.DeliveryReport{}, nil
	}

	if len(tokens) > service.MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxMulticastTokens)
	}

	message := &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: toNotification(payload),
		Data:         payload.Data,
		Android:      toAndroidConfig(payload),
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report := &entity.DeliveryReport{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}

	// Responses are in the same order as tokens
	for idx, sendResponse := range response.Responses {
		if sendResponse == nil || sendResponse.Error == nil || idx >= len(tokens) {
			continue
		}

		report.Failures = append(report.Failures, entity.DeliveryFailure{
			Token:   tokens[idx],
			Reason:  sendResponse.Error.Error(),
			Invalid: s.isInvalidErr(sendResponse.Error),
		})
	}

	return report, nil
}

func toNotification(payload *entity.NotificationPayload) *messaging.Notification {
	return &messaging.Notification{
		Title: payload.Title,
		Body:  payload.Body,
	}
}

// toAndroidConfig mirrors the click action into the Android notification so
// that the tap opens the app on the right screen.
func toAndroidConfig(payload *entity.NotificationPayload) *messaging.AndroidConfig {
	clickAction := payload.Data[entity.PayloadKeyClickAction]
	if clickAction == "" {
		return nil
	}

	return &messaging.AndroidConfig{
		Notification: &messaging.AndroidNotification{
			ClickAction: clickAction,
		},
	}
}
