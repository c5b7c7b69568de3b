package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"pulse/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub,
// one topic per event type
type googlePubSubPublisher struct {
	client    *pubsub.Client
	broadcast *pubsub.Publisher
	chat      *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, broadcastTopicID, chatTopicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check that both topics exist using TopicAdminClient
	for _, topicID := range []string{broadcastTopicID, chatTopicID} {
		topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
		_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
			Topic: topicPath,
		})
		if err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
		}
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("broadcast_topic_id", broadcastTopicID),
		slog.String("chat_topic_id", chatTopicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		broadcast: client.Publisher(broadcastTopicID),
		chat:      client.Publisher(chatTopicID),
		logger:    logger,
	}, nil
}

// PublishBroadcastRequest publishes a broadcast request to its topic
func (p *googlePubSubPublisher) PublishBroadcastRequest(ctx context.Context, event *service.BroadcastRequestEvent) error {
	msg, err := newBroadcastMessage(ctx, event)
	if err != nil {
		return err
	}

	return p.publish(ctx, p.broadcast, msg)
}

// PublishChatMessage publishes a chat message to its topic
func (p *googlePubSubPublisher) PublishChatMessage(ctx context.Context, event *service.ChatMessageEvent) error {
	msg, err := newChatMessage(ctx, event)
	if err != nil {
		return err
	}

	return p.publish(ctx, p.chat, msg)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, publisher *pubsub.Publisher, msg *outboundMessage) error {
	p.logger.Info("[GooglePubSub] Publishing event",
		slog.String("event_type", msg.attributes[AttributeEventType]),
		slog.String("event_id", msg.id),
	)

	result := publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	})

	// Wait for publish result
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Event published successfully",
		slog.String("event_id", msg.id),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.broadcast != nil {
		p.broadcast.Stop()
	}
	if p.chat != nil {
		p.chat.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
