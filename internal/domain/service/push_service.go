package service

import (
	"context"

	"pulse/internal/domain/entity"
)

// MaxMulticastTokens is the largest token set one multicast call may carry.
const MaxMulticastTokens = 500

// PushService defines the interface for push notification delivery.
type PushService interface {
	// SendMulticast sends one payload to at most MaxMulticastTokens tokens in a
	// single call. Per-token failures are reported in the DeliveryReport; the
	// error is set only when the call as a whole failed.
	SendMulticast(ctx context.Context, tokens []string, payload *entity.NotificationPayload) (*entity.DeliveryReport, error)

	// SendSingle sends a payload to a single device token.
	SendSingle(ctx context.Context, token string, payload *entity.NotificationPayload) error
}
