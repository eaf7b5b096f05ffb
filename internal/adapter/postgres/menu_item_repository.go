package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type menuItemRepository struct {
	db DB
}

func NewMenuItemRepository(db DB) interfaces.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, type)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, item.Name, item.Type).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	query := `
		SELECT id, name, type
		FROM menu_items
		WHERE id = $1
	`
	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}
	return &item, nil
}

func (r *menuItemRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	query := `
		SELECT id, name, type
		FROM menu_items
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Type); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *menuItemRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, type = $2
		WHERE id = $3
		RETURNING id
	`
	var id int
	err := r.db.QueryRow(ctx, query, item.Name, item.Type, item.ID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	return nil
}

// Delete removes a menu item. An item still linked to historical orders is
// protected by the container_items foreign key; the constraint violation is
// mapped to a domain error so callers can show a "still referenced" message.
func (r *menuItemRepository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM menu_items
		WHERE id = $1
		RETURNING id
	`
	var deleted int
	err := r.db.QueryRow(ctx, query, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return &domain.ReferentialIntegrityError{Entity: "menu item"}
		}
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
