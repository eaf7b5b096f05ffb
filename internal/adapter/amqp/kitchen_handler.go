package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"
)

// KitchenHandler renders placed orders on the kitchen display console.
type KitchenHandler struct {
	logger logger.Logger
}

func NewKitchenHandler(logger logger.Logger) *KitchenHandler {
	return &KitchenHandler{logger: logger}
}

func (h *KitchenHandler) HandleOrderPlaced(ctx context.Context, body []byte) error {
	var msg interfaces.OrderPlacedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse order placed message", "", nil, err)
		return err
	}

	h.logger.Debug("order_received", fmt.Sprintf("Received order %d", msg.OrderID), "", map[string]interface{}{
		"order_id":   msg.OrderID,
		"containers": len(msg.Containers),
	})

	fmt.Printf("Order #%d for customer %d (%s): %s\n",
		msg.OrderID, msg.CustomerID, msg.Total, describeContainers(msg.Containers))

	return nil
}

func describeContainers(containers []interfaces.ContainerMessage) string {
	parts := make([]string, len(containers))
	for i, c := range containers {
		parts[i] = fmt.Sprintf("%s (%d mains, %d sides)", c.SizeName, len(c.MainIDs), len(c.SideIDs))
	}
	return strings.Join(parts, ", ")
}
