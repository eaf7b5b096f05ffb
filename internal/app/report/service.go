package report

import (
	"context"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"
)

type Service struct {
	reportRepo interfaces.ReportRepository
	logger     logger.Logger
}

func NewService(reportRepo interfaces.ReportRepository, logger logger.Logger) *Service {
	return &Service{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// SalesReport counts container-size and item occurrences for orders placed
// within [start, end] inclusive. A range with no orders yields three empty
// lists, not an error.
func (s *Service) SalesReport(ctx context.Context, start, end time.Time) (*interfaces.SalesReportResult, error) {
	popularSizes, err := s.reportRepo.PopularSizes(ctx, start, end)
	if err != nil {
		s.logger.Error("report_query_failed", "Failed to rank sizes", "", nil, err)
		return nil, err
	}

	popularMains, err := s.reportRepo.PopularItems(ctx, start, end, domain.RoleMain)
	if err != nil {
		s.logger.Error("report_query_failed", "Failed to rank mains", "", nil, err)
		return nil, err
	}

	popularSides, err := s.reportRepo.PopularItems(ctx, start, end, domain.RoleSide)
	if err != nil {
		s.logger.Error("report_query_failed", "Failed to rank sides", "", nil, err)
		return nil, err
	}

	return &interfaces.SalesReportResult{
		PopularSizes: nonNil(popularSizes),
		PopularMains: nonNil(popularMains),
		PopularSides: nonNil(popularSides),
	}, nil
}

func nonNil(rows []interfaces.PopularityRow) []interfaces.PopularityRow {
	if rows == nil {
		return []interfaces.PopularityRow{}
	}
	return rows
}
