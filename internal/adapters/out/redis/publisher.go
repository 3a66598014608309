package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ordersvc/internal/core/domain/model/order"

	goredis "github.com/redis/go-redis/v9"
)

// Channels names the pub/sub fan-out targets.
type Channels struct {
	Events        string
	Notifications string
	Analytics     string
}

// DefaultChannels returns the conventional channel names.
func DefaultChannels() Channels {
	return Channels{
		Events:        "order.events",
		Notifications: "order.notifications",
		Analytics:     "order.analytics",
	}
}

// Publisher fans order events out over Redis pub/sub. Every event goes to
// the events and analytics channels; lifecycle events additionally go to the
// notifications channel. All sends are attempted synchronously and in that
// order; consumers must not assume delivery ordering across channels.
type Publisher struct {
	client   *goredis.Client
	channels Channels
}

// NewPublisher creates a pub/sub publisher over the given channels.
func NewPublisher(client *goredis.Client, channels Channels) *Publisher {
	return &Publisher{client: client, channels: channels}
}

// Publish implements ports.EventPublisher. The event is serialized once and
// every channel send is attempted even when an earlier one fails; failures
// are joined into the returned error.
func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event %s: %w", event.EventID, err)
	}

	var sendErrs []error
	if err = p.client.Publish(ctx, p.channels.Events, payload).Err(); err != nil {
		sendErrs = append(sendErrs, fmt.Errorf("failed to publish to %s: %w", p.channels.Events, err))
	}
	if event.IsLifecycle() {
		if err = p.client.Publish(ctx, p.channels.Notifications, payload).Err(); err != nil {
			sendErrs = append(sendErrs, fmt.Errorf("failed to publish to %s: %w", p.channels.Notifications, err))
		}
	}
	if err = p.client.Publish(ctx, p.channels.Analytics, payload).Err(); err != nil {
		sendErrs = append(sendErrs, fmt.Errorf("failed to publish to %s: %w", p.channels.Analytics, err))
	}

	return errors.Join(sendErrs...)
}
