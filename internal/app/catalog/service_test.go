package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"

	"github.com/shopspring/decimal"
)

type fakeMenuItemRepo struct {
	items      map[int]*domain.MenuItem
	nextID     int
	referenced map[int]bool
}

func newFakeMenuItemRepo() *fakeMenuItemRepo {
	return &fakeMenuItemRepo{
		items:      make(map[int]*domain.MenuItem),
		referenced: make(map[int]bool),
	}
}

func (r *fakeMenuItemRepo) Create(ctx context.Context, item *domain.MenuItem) error {
	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuItemRepo) GetByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (r *fakeMenuItemRepo) List(ctx context.Context) ([]*domain.MenuItem, error) {
	var items []*domain.MenuItem
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeMenuItemRepo) Update(ctx context.Context, item *domain.MenuItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuItemRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	if r.referenced[id] {
		return &domain.ReferentialIntegrityError{Entity: "menu item"}
	}
	delete(r.items, id)
	return nil
}

type fakeSizeRepo struct {
	sizes []*domain.Size
}

func (r *fakeSizeRepo) Create(ctx context.Context, size *domain.Size) error {
	size.ID = len(r.sizes) + 1
	r.sizes = append(r.sizes, size)
	return nil
}

func (r *fakeSizeRepo) GetByID(ctx context.Context, id int) (*domain.Size, error) {
	for _, s := range r.sizes {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSizeRepo) GetByName(ctx context.Context, name string) (*domain.Size, error) {
	for _, s := range r.sizes {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSizeRepo) List(ctx context.Context) ([]*domain.Size, error) {
	return r.sizes, nil
}

func TestCreateMenuItemValidatesType(t *testing.T) {
	repo := newFakeMenuItemRepo()
	svc := NewService(&fakeSizeRepo{}, repo, logger.New("test"))

	err := svc.CreateMenuItem(context.Background(), &domain.MenuItem{Name: "Mystery Dish", Type: "DESSERT"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(repo.items) != 0 {
		t.Error("invalid item reached the repository")
	}
}

func TestDeleteReferencedMenuItemFailsAndKeepsItem(t *testing.T) {
	repo := newFakeMenuItemRepo()
	svc := NewService(&fakeSizeRepo{}, repo, logger.New("test"))

	item := &domain.MenuItem{Name: "Orange Chicken", Type: domain.MenuItemEntree}
	if err := svc.CreateMenuItem(context.Background(), item); err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}
	repo.referenced[item.ID] = true

	err := svc.DeleteMenuItem(context.Background(), item.ID)
	var refErr *domain.ReferentialIntegrityError
	if !errors.As(err, &refErr) {
		t.Fatalf("error = %v, want *ReferentialIntegrityError", err)
	}

	if _, err := svc.GetMenuItem(context.Background(), item.ID); err != nil {
		t.Error("referenced item should survive the failed delete")
	}
}

func TestDeleteUnreferencedMenuItem(t *testing.T) {
	repo := newFakeMenuItemRepo()
	svc := NewService(&fakeSizeRepo{}, repo, logger.New("test"))

	item := &domain.MenuItem{Name: "Fortune Cookie", Type: domain.MenuItemAppetizer}
	if err := svc.CreateMenuItem(context.Background(), item); err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	if err := svc.DeleteMenuItem(context.Background(), item.ID); err != nil {
		t.Fatalf("DeleteMenuItem: %v", err)
	}
	if _, err := svc.GetMenuItem(context.Background(), item.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Error("item should be gone after delete")
	}
}

func TestCreateSizeValidatesPrice(t *testing.T) {
	sizeRepo := &fakeSizeRepo{}
	svc := NewService(sizeRepo, newFakeMenuItemRepo(), logger.New("test"))

	err := svc.CreateSize(context.Background(), &domain.Size{
		Name:  "freebie",
		Price: decimal.RequireFromString("-1.00"),
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}

	if err := svc.CreateSize(context.Background(), &domain.Size{
		Name:     "bowl",
		Price:    decimal.RequireFromString("8.30"),
		NumMains: 1,
		NumSides: 1,
	}); err != nil {
		t.Fatalf("CreateSize: %v", err)
	}
	if len(sizeRepo.sizes) != 1 {
		t.Errorf("persisted sizes = %d, want 1", len(sizeRepo.sizes))
	}
}
