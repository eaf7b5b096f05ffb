package interfaces

import (
	"context"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
)

// Commands for the order composer.
type PlaceOrderCommand struct {
	CustomerID int
	Containers []ContainerCommand
}

// ContainerCommand identifies its size either by id or by name; id wins when
// both are present.
type ContainerCommand struct {
	SizeID   int
	SizeName string
	MainIDs  []int
	SideIDs  []int
}

type OrderService interface {
	PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	LatestOrdersByCustomer(ctx context.Context, customerID, limit int) ([]*domain.Order, error)
	OrdersWithinPeriod(ctx context.Context, start, end time.Time) ([]*domain.Order, error)
}

// PopularityRow is one line of a sales report ranking.
type PopularityRow struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type SalesReportResult struct {
	PopularSizes []PopularityRow `json:"popular_sizes"`
	PopularMains []PopularityRow `json:"popular_mains"`
	PopularSides []PopularityRow `json:"popular_sides"`
}

type ReportService interface {
	SalesReport(ctx context.Context, start, end time.Time) (*SalesReportResult, error)
}

type CatalogService interface {
	CreateSize(ctx context.Context, size *domain.Size) error
	GetSize(ctx context.Context, id int) (*domain.Size, error)
	ListSizes(ctx context.Context) ([]*domain.Size, error)

	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int) error
}
