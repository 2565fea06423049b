package pubsub

import (
	"context"
	"encoding/base64"
	"log/slog"
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/contacts-domain-events"
	localPublishTimeout = 10 * time.Second
)

// localHTTPPublisher pushes events to an HTTP endpoint in the Pub/Sub push format,
// so a consumer can be developed against it without a Pub/Sub emulator.
type localHTTPPublisher struct {
	client *resty.Client
	logger *slog.Logger
}

// PubSubPushMessage is the body Google Pub/Sub posts to push subscriptions.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher posting to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		client: resty.New().
			SetBaseURL(endpoint).
			SetTimeout(localPublishTimeout).
			SetHeader("Content-Type", "application/json"),
		logger: logger.With(slog.String("endpoint", endpoint)),
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *entity.OutboundEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var push PubSubPushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = eventAttributes(event)
	push.Message.MessageID = event.ID.String()
	push.Message.OrderingKey = orderingKey(event)
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	resp, err := p.client.R().SetContext(ctx).SetBody(push).Post("")
	if err != nil {
		return errors.Wrap(err, "failed to push event")
	}
	if !resp.IsSuccess() {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode())
	}

	p.logger.Debug("Event pushed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Kind)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
