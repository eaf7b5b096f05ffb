package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"
)

type Service struct {
	orderRepo interfaces.OrderRepository
	sizeRepo  interfaces.SizeRepository
	publisher interfaces.MessagePublisher
	logger    logger.Logger
}

func NewService(
	orderRepo interfaces.OrderRepository,
	sizeRepo interfaces.SizeRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
) *Service {
	return &Service{
		orderRepo: orderRepo,
		sizeRepo:  sizeRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder resolves every container's size, prices the order as the exact
// decimal sum of the resolved prices, and persists the whole order in one
// transaction. If any size fails to resolve, nothing is persisted.
func (s *Service) PlaceOrder(ctx context.Context, cmd interfaces.PlaceOrderCommand) (*domain.Order, error) {
	containers := make([]domain.Container, len(cmd.Containers))
	sizes := make([]domain.Size, len(cmd.Containers))

	for i, cc := range cmd.Containers {
		size, err := s.resolveSize(ctx, cc)
		if err != nil {
			s.logger.Error("size_resolution_failed", "Failed to resolve container size", "", map[string]interface{}{
				"size_id":   cc.SizeID,
				"size_name": cc.SizeName,
			}, err)
			return nil, err
		}
		sizes[i] = *size
		containers[i] = domain.Container{
			Mains: itemRefs(cc.MainIDs),
			Sides: itemRefs(cc.SideIDs),
		}
	}

	order, err := domain.NewOrder(cmd.CustomerID, containers, sizes)
	if err != nil {
		s.logger.Error("validation_failed", "Order validation failed", "", nil, err)
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to create order", "", nil, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	s.logger.Debug("order_created", "Order committed", "", map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total.StringFixed(2),
	})

	// Persistence is the commit point. A publish failure only costs the
	// kitchen display a notification, so it is logged and the order stands.
	if err := s.publisher.PublishOrderPlaced(ctx, orderPlacedMessage(order)); err != nil {
		s.logger.Error("publish_failed", "Failed to publish order placed event", "", map[string]interface{}{
			"order_id": order.ID,
		}, err)
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *Service) LatestOrdersByCustomer(ctx context.Context, customerID, limit int) ([]*domain.Order, error) {
	if limit < 1 {
		limit = 5
	}
	return s.orderRepo.ListByCustomer(ctx, customerID, limit)
}

func (s *Service) OrdersWithinPeriod(ctx context.Context, start, end time.Time) ([]*domain.Order, error) {
	return s.orderRepo.ListBetween(ctx, start, end)
}

// resolveSize prefers the id when both id and name are given. Any lookup
// miss is reported as an unknown size, which fails the whole placement.
func (s *Service) resolveSize(ctx context.Context, cc interfaces.ContainerCommand) (*domain.Size, error) {
	var (
		size *domain.Size
		err  error
		name string
	)
	switch {
	case cc.SizeID > 0:
		name = "#" + strconv.Itoa(cc.SizeID)
		size, err = s.sizeRepo.GetByID(ctx, cc.SizeID)
	case cc.SizeName != "":
		name = cc.SizeName
		size, err = s.sizeRepo.GetByName(ctx, cc.SizeName)
	default:
		return nil, &domain.ValidationError{Field: "size", Message: "container size id or name is required"}
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.UnknownSizeError{Name: name}
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return size, nil
}

func itemRefs(ids []int) []domain.ItemRef {
	refs := make([]domain.ItemRef, len(ids))
	for i, id := range ids {
		refs[i] = domain.ItemRef{ID: id}
	}
	return refs
}

func orderPlacedMessage(order *domain.Order) interfaces.OrderPlacedMessage {
	msg := interfaces.OrderPlacedMessage{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total.StringFixed(2),
		PlacedAt:   order.PlacedAt,
		Containers: make([]interfaces.ContainerMessage, len(order.Containers)),
	}
	for i, c := range order.Containers {
		msg.Containers[i] = interfaces.ContainerMessage{
			SizeName: c.SizeName,
			MainIDs:  itemIDs(c.Mains),
			SideIDs:  itemIDs(c.Sides),
		}
	}
	return msg
}

func itemIDs(refs []domain.ItemRef) []int {
	ids := make([]int, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}
