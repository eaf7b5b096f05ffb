package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"
)

type reportRepository struct {
	db DB
}

func NewReportRepository(db DB) interfaces.ReportRepository {
	return &reportRepository{db: db}
}

// Rankings are ordered ascending by count, matching the manager dashboard's
// historical behavior. A missing join partner reports as "Unknown Name"
// instead of failing the whole report.

const popularSizesQuery = `
	SELECT COALESCE(s.name, 'Unknown Name') AS name, COUNT(*) AS quantity
	FROM containers c
	JOIN orders o ON o.id = c.order_id
	LEFT JOIN sizes s ON s.id = c.size_id
	WHERE o.placed_at BETWEEN $1 AND $2
	GROUP BY s.name
	ORDER BY quantity ASC
`

const popularItemsQuery = `
	SELECT COALESCE(m.name, 'Unknown Name') AS name, COUNT(*) AS quantity
	FROM container_items ci
	JOIN containers c ON c.id = ci.container_id
	JOIN orders o ON o.id = c.order_id
	LEFT JOIN menu_items m ON m.id = ci.menu_item_id
	WHERE o.placed_at BETWEEN $1 AND $2 AND ci.role = $3
	GROUP BY m.name
	ORDER BY quantity ASC
`

func (r *reportRepository) PopularSizes(ctx context.Context, start, end time.Time) ([]interfaces.PopularityRow, error) {
	return r.queryRanking(ctx, popularSizesQuery, start, end)
}

func (r *reportRepository) PopularItems(ctx context.Context, start, end time.Time, role domain.ItemRole) ([]interfaces.PopularityRow, error) {
	return r.queryRanking(ctx, popularItemsQuery, start, end, role)
}

func (r *reportRepository) queryRanking(ctx context.Context, query string, args ...any) ([]interfaces.PopularityRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking: %w", err)
	}
	defer rows.Close()

	ranking := []interfaces.PopularityRow{}
	for rows.Next() {
		var row interfaces.PopularityRow
		if err := rows.Scan(&row.Name, &row.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan ranking row: %w", err)
		}
		ranking = append(ranking, row)
	}
	return ranking, rows.Err()
}
