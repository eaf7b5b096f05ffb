package interfaces

import (
	"context"
	"time"
)

// OrderPlacedMessage is published to the kitchen display exchange after an
// order commits. Total is the decimal string form to keep the wire format
// exact.
type OrderPlacedMessage struct {
	OrderID    int                `json:"order_id"`
	CustomerID int                `json:"customer_id"`
	Total      string             `json:"total"`
	PlacedAt   time.Time          `json:"placed_at"`
	Containers []ContainerMessage `json:"containers"`
}

type ContainerMessage struct {
	SizeName string `json:"size_name"`
	MainIDs  []int  `json:"main_ids"`
	SideIDs  []int  `json:"side_ids"`
}

type MessagePublisher interface {
	PublishOrderPlaced(ctx context.Context, msg OrderPlacedMessage) error
}

type MessageConsumer interface {
	ConsumeOrderPlaced(ctx context.Context, handler OrderPlacedHandler) error
}

type OrderPlacedHandler func(ctx context.Context, body []byte) error
