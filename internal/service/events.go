package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/cart_service/internal/logging"
)

const (
	EventItemAdded   = "item_added"
	EventItemUpdated = "item_updated"
	EventItemRemoved = "item_removed"
	EventCartEmptied = "cart_emptied"

	DefaultTopic = "cart_events"
)

type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type CartEvent struct {
	ID         string           `json:"event_id"`
	Type       string           `json:"type"`
	UserID     int64            `json:"user_id"`
	ProductID  *int64           `json:"product_id,omitempty"`
	Quantity   *int64           `json:"quantity,omitempty"`
	TotalMRP   *decimal.Decimal `json:"total_mrp,omitempty"`
	Removed    *int64           `json:"removed,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// publish never fails the caller: the row is already committed.
func (s *CartService) publish(ctx context.Context, ev CartEvent) {
	if s.Publisher == nil {
		return
	}

	ev.ID = uuid.NewString()
	ev.OccurredAt = time.Now().UTC()

	topic := s.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	if err := s.Publisher.PublishEvent(ctx, topic, strconv.FormatInt(ev.UserID, 10), ev); err != nil {
		logging.FromContext(ctx).Error("publish_cart_event_error", "type", ev.Type, "user_id", ev.UserID, "error", err)
	}
}
