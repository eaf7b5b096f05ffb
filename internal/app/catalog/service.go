package catalog

import (
	"context"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"
)

// Service owns the size and menu item reference data used by order
// composition and the manager dashboards.
type Service struct {
	sizeRepo interfaces.SizeRepository
	itemRepo interfaces.MenuItemRepository
	logger   logger.Logger
}

func NewService(
	sizeRepo interfaces.SizeRepository,
	itemRepo interfaces.MenuItemRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		sizeRepo: sizeRepo,
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (s *Service) CreateSize(ctx context.Context, size *domain.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	if err := s.sizeRepo.Create(ctx, size); err != nil {
		s.logger.Error("size_create_failed", "Failed to create size", "", nil, err)
		return err
	}
	return nil
}

func (s *Service) GetSize(ctx context.Context, id int) (*domain.Size, error) {
	return s.sizeRepo.GetByID(ctx, id)
}

func (s *Service) ListSizes(ctx context.Context) ([]*domain.Size, error) {
	return s.sizeRepo.List(ctx)
}

func (s *Service) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error("menu_item_create_failed", "Failed to create menu item", "", nil, err)
		return err
	}
	return nil
}

func (s *Service) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *Service) ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.itemRepo.List(ctx)
}

func (s *Service) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return s.itemRepo.Update(ctx, item)
}

// DeleteMenuItem refuses to remove items still linked to historical orders;
// the repository reports that as a ReferentialIntegrityError.
func (s *Service) DeleteMenuItem(ctx context.Context, id int) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		s.logger.Error("menu_item_delete_failed", "Failed to delete menu item", "", map[string]interface{}{
			"menu_item_id": id,
		}, err)
		return err
	}
	return nil
}
