package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"

	"github.com/jackc/pgx/v5"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

// Create writes the order header, its containers and their item linkages in
// one transaction. Either the whole order becomes visible or none of it; a
// reader can never observe a header without its containers.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (customer_id, total, placed_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err = tx.QueryRow(ctx, query, order.CustomerID, order.Total, order.PlacedAt).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Containers {
		c := &order.Containers[i]
		c.OrderID = order.ID

		containerQuery := `
			INSERT INTO containers (order_id, size_id)
			VALUES ($1, $2)
			RETURNING id
		`
		if err := tx.QueryRow(ctx, containerQuery, c.OrderID, c.SizeID).Scan(&c.ID); err != nil {
			return fmt.Errorf("failed to insert container: %w", err)
		}

		linkQuery := `
			INSERT INTO container_items (container_id, menu_item_id, role)
			VALUES ($1, $2, $3)
		`
		for _, item := range c.Mains {
			if err := tx.Exec(ctx, linkQuery, c.ID, item.ID, domain.RoleMain); err != nil {
				return fmt.Errorf("failed to insert main linkage: %w", err)
			}
		}
		for _, item := range c.Sides {
			if err := tx.Exec(ctx, linkQuery, c.ID, item.ID, domain.RoleSide); err != nil {
				return fmt.Errorf("failed to insert side linkage: %w", err)
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
		SELECT id, customer_id, total, placed_at
		FROM orders
		WHERE id = $1
	`

	var order domain.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.CustomerID, &order.Total, &order.PlacedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	if err := r.loadContainers(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID, limit int) ([]*domain.Order, error) {
	query := `
		SELECT id, customer_id, total, placed_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY placed_at DESC
		LIMIT $2
	`
	return r.listOrders(ctx, query, customerID, limit)
}

func (r *orderRepository) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Order, error) {
	query := `
		SELECT id, customer_id, total, placed_at
		FROM orders
		WHERE placed_at BETWEEN $1 AND $2
		ORDER BY placed_at
	`
	return r.listOrders(ctx, query, start, end)
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.Total, &order.PlacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	for _, order := range orders {
		if err := r.loadContainers(ctx, order); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// loadContainers fills the order's containers and their linked items. Item
// order within a role is not significant but the sets round-trip exactly.
func (r *orderRepository) loadContainers(ctx context.Context, order *domain.Order) error {
	query := `
		SELECT c.id, c.size_id, s.name
		FROM containers c
		JOIN sizes s ON s.id = c.size_id
		WHERE c.order_id = $1
		ORDER BY c.id
	`
	rows, err := r.db.Query(ctx, query, order.ID)
	if err != nil {
		return fmt.Errorf("failed to load containers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c := domain.Container{OrderID: order.ID}
		if err := rows.Scan(&c.ID, &c.SizeID, &c.SizeName); err != nil {
			return fmt.Errorf("failed to scan container: %w", err)
		}
		order.Containers = append(order.Containers, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read containers: %w", err)
	}

	for i := range order.Containers {
		if err := r.loadContainerItems(ctx, &order.Containers[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) loadContainerItems(ctx context.Context, c *domain.Container) error {
	query := `
		SELECT ci.menu_item_id, m.name, ci.role
		FROM container_items ci
		JOIN menu_items m ON m.id = ci.menu_item_id
		WHERE ci.container_id = $1
	`
	rows, err := r.db.Query(ctx, query, c.ID)
	if err != nil {
		return fmt.Errorf("failed to load container items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.ItemRef
		var role domain.ItemRole
		if err := rows.Scan(&item.ID, &item.Name, &role); err != nil {
			return fmt.Errorf("failed to scan container item: %w", err)
		}
		switch role {
		case domain.RoleMain:
			c.Mains = append(c.Mains, item)
		case domain.RoleSide:
			c.Sides = append(c.Sides, item)
		}
	}
	return rows.Err()
}
