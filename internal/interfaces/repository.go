package interfaces

import (
	"context"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
)

type SizeRepository interface {
	Create(ctx context.Context, size *domain.Size) error
	GetByID(ctx context.Context, id int) (*domain.Size, error)
	GetByName(ctx context.Context, name string) (*domain.Size, error)
	List(ctx context.Context) ([]*domain.Size, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id int) (*domain.MenuItem, error)
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
}

type OrderRepository interface {
	// Create persists the order header, its containers and their item
	// linkages in a single transaction and fills in the generated ids.
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID, limit int) ([]*domain.Order, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Order, error)
}

type ReportRepository interface {
	PopularSizes(ctx context.Context, start, end time.Time) ([]PopularityRow, error)
	PopularItems(ctx context.Context, start, end time.Time, role domain.ItemRole) ([]PopularityRow, error)
}
