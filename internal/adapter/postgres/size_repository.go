package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"

	"github.com/jackc/pgx/v5"
)

type sizeRepository struct {
	db DB
}

func NewSizeRepository(db DB) interfaces.SizeRepository {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) Create(ctx context.Context, size *domain.Size) error {
	query := `
		INSERT INTO sizes (name, price, num_mains, num_sides)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, size.Name, size.Price, size.NumMains, size.NumSides).Scan(&size.ID)
	if err != nil {
		return fmt.Errorf("failed to insert size: %w", err)
	}
	return nil
}

func (r *sizeRepository) GetByID(ctx context.Context, id int) (*domain.Size, error) {
	query := `
		SELECT id, name, price, num_mains, num_sides
		FROM sizes
		WHERE id = $1
	`
	return r.scanSize(r.db.QueryRow(ctx, query, id))
}

func (r *sizeRepository) GetByName(ctx context.Context, name string) (*domain.Size, error) {
	query := `
		SELECT id, name, price, num_mains, num_sides
		FROM sizes
		WHERE name = $1
	`
	return r.scanSize(r.db.QueryRow(ctx, query, name))
}

func (r *sizeRepository) List(ctx context.Context) ([]*domain.Size, error) {
	query := `
		SELECT id, name, price, num_mains, num_sides
		FROM sizes
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sizes: %w", err)
	}
	defer rows.Close()

	var sizes []*domain.Size
	for rows.Next() {
		var s domain.Size
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.NumMains, &s.NumSides); err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		sizes = append(sizes, &s)
	}
	return sizes, rows.Err()
}

func (r *sizeRepository) scanSize(row Row) (*domain.Size, error) {
	var s domain.Size
	err := row.Scan(&s.ID, &s.Name, &s.Price, &s.NumMains, &s.NumSides)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load size: %w", err)
	}
	return &s, nil
}
