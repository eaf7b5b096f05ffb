package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"

	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	service interfaces.CatalogService
	logger  logger.Logger
}

func NewCatalogHandler(service interfaces.CatalogService, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

type SizeRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	NumMains int    `json:"num_mains"`
	NumSides int    `json:"num_sides"`
}

type SizeResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	NumMains int    `json:"num_mains"`
	NumSides int    `json:"num_sides"`
}

type MenuItemRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type MenuItemResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// HandleSizes serves GET /sizes and POST /sizes.
func (h *CatalogHandler) HandleSizes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sizes, err := h.service.ListSizes(r.Context())
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, sizesToResponse(sizes))

	case http.MethodPost:
		var req SizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest, nil)
			return
		}

		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			respondError(w, "Invalid price", http.StatusBadRequest, nil)
			return
		}

		size := &domain.Size{
			Name:     strings.TrimSpace(req.Name),
			Price:    price,
			NumMains: req.NumMains,
			NumSides: req.NumSides,
		}
		if err := h.service.CreateSize(r.Context(), size); err != nil {
			respondDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, sizeToResponse(size))

	default:
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
	}
}

// HandleSizeByID serves GET /sizes/{id}.
func (h *CatalogHandler) HandleSizeByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	id, ok := pathID(w, r, "sizes")
	if !ok {
		return
	}

	size, err := h.service.GetSize(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sizeToResponse(size))
}

// HandleMenuItems serves GET /menu-items and POST /menu-items.
func (h *CatalogHandler) HandleMenuItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := h.service.ListMenuItems(r.Context())
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, menuItemsToResponse(items))

	case http.MethodPost:
		var req MenuItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest, nil)
			return
		}

		item := &domain.MenuItem{
			Name: strings.TrimSpace(req.Name),
			Type: domain.MenuItemType(req.Type),
		}
		if err := h.service.CreateMenuItem(r.Context(), item); err != nil {
			respondDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, menuItemToResponse(item))

	default:
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
	}
}

// HandleMenuItemByID serves GET, PUT and DELETE on /menu-items/{id}.
func (h *CatalogHandler) HandleMenuItemByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "menu-items")
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		item, err := h.service.GetMenuItem(r.Context(), id)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, menuItemToResponse(item))

	case http.MethodPut:
		var req MenuItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest, nil)
			return
		}

		item := &domain.MenuItem{
			ID:   id,
			Name: strings.TrimSpace(req.Name),
			Type: domain.MenuItemType(req.Type),
		}
		if err := h.service.UpdateMenuItem(r.Context(), item); err != nil {
			respondDomainError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, menuItemToResponse(item))

	case http.MethodDelete:
		if err := h.service.DeleteMenuItem(r.Context(), id); err != nil {
			respondDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
	}
}

func pathID(w http.ResponseWriter, r *http.Request, resource string) (int, bool) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 || parts[0] != resource {
		respondError(w, "not found", http.StatusNotFound, nil)
		return 0, false
	}
	id, err := strconv.Atoi(parts[1])
	if err != nil {
		respondError(w, "Invalid id", http.StatusBadRequest, nil)
		return 0, false
	}
	return id, true
}

func sizesToResponse(sizes []*domain.Size) []SizeResponse {
	resp := make([]SizeResponse, len(sizes))
	for i, s := range sizes {
		resp[i] = sizeToResponse(s)
	}
	return resp
}

func sizeToResponse(s *domain.Size) SizeResponse {
	return SizeResponse{
		ID:       s.ID,
		Name:     s.Name,
		Price:    s.Price.StringFixed(2),
		NumMains: s.NumMains,
		NumSides: s.NumSides,
	}
}

func menuItemsToResponse(items []*domain.MenuItem) []MenuItemResponse {
	resp := make([]MenuItemResponse, len(items))
	for i, item := range items {
		resp[i] = menuItemToResponse(item)
	}
	return resp
}

func menuItemToResponse(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:   item.ID,
		Name: item.Name,
		Type: string(item.Type),
	}
}
