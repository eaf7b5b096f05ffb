package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

type PlaceOrderRequest struct {
	CustomerID int                `json:"customer_id"`
	Containers []ContainerRequest `json:"containers"`
}

type ContainerRequest struct {
	SizeID   int    `json:"size_id,omitempty"`
	SizeName string `json:"size_name,omitempty"`
	MainIDs  []int  `json:"main_ids"`
	SideIDs  []int  `json:"side_ids"`
}

type PlaceOrderResponse struct {
	OrderID int    `json:"order_id"`
	Total   string `json:"total"`
}

type OrderResponse struct {
	ID         int                 `json:"id"`
	CustomerID int                 `json:"customer_id"`
	Total      string              `json:"total"`
	PlacedAt   time.Time           `json:"placed_at"`
	Containers []ContainerResponse `json:"containers"`
}

type ContainerResponse struct {
	ID       int    `json:"id"`
	SizeID   int    `json:"size_id"`
	SizeName string `json:"size_name"`
	MainIDs  []int  `json:"main_ids"`
	SideIDs  []int  `json:"side_ids"`
}

// HandleOrders serves POST /orders (place order) and GET /orders?start=&end=
// (orders within an inclusive time period).
func (h *OrderHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.placeOrder(w, r)
	case http.MethodGet:
		h.ordersWithinPeriod(w, r)
	default:
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
	}
}

func (h *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validatePlaceOrderRequest(req); len(validationErrors) > 0 {
		h.logger.Error("validation_failed", "Order request validation failed", "", map[string]interface{}{
			"errors": validationErrors,
		}, nil)
		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	cmd := interfaces.PlaceOrderCommand{
		CustomerID: req.CustomerID,
		Containers: make([]interfaces.ContainerCommand, len(req.Containers)),
	}
	for i, c := range req.Containers {
		cmd.Containers[i] = interfaces.ContainerCommand{
			SizeID:   c.SizeID,
			SizeName: strings.TrimSpace(c.SizeName),
			MainIDs:  c.MainIDs,
			SideIDs:  c.SideIDs,
		}
	}

	order, err := h.service.PlaceOrder(r.Context(), cmd)
	if err != nil {
		h.logger.Error("order_placement_failed", "Failed to place order", "", nil, err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, PlaceOrderResponse{
		OrderID: order.ID,
		Total:   order.Total.StringFixed(2),
	})
}

func validatePlaceOrderRequest(req PlaceOrderRequest) []ValidationError {
	var errors []ValidationError

	if req.CustomerID < 1 {
		errors = append(errors, ValidationError{
			Field:   "customer_id",
			Message: "customer id is required",
		})
	}

	if len(req.Containers) < 1 {
		errors = append(errors, ValidationError{
			Field:   "containers",
			Message: "order must contain at least 1 container",
		})
	}

	for i, c := range req.Containers {
		if c.SizeID < 1 && strings.TrimSpace(c.SizeName) == "" {
			errors = append(errors, ValidationError{
				Field:   "containers[" + strconv.Itoa(i) + "].size",
				Message: "container size id or name is required",
			})
		}
	}

	return errors
}

func (h *OrderHandler) ordersWithinPeriod(w http.ResponseWriter, r *http.Request) {
	start, end, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	orders, err := h.service.OrdersWithinPeriod(r.Context(), start, end)
	if err != nil {
		h.logger.Error("order_query_failed", "Failed to list orders", "", nil, err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ordersToResponse(orders))
}

// HandleOrderByID serves GET /orders/{id}.
func (h *OrderHandler) HandleOrderByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		respondError(w, "not found", http.StatusNotFound, nil)
		return
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		respondError(w, "Invalid order id", http.StatusBadRequest, nil)
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orderToResponse(order))
}

// HandleCustomerOrders serves GET /customers/{id}/orders?limit=, the latest
// orders for a customer, newest first.
func (h *OrderHandler) HandleCustomerOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 || parts[2] != "orders" {
		respondError(w, "not found", http.StatusNotFound, nil)
		return
	}

	customerID, err := strconv.Atoi(parts[1])
	if err != nil {
		respondError(w, "Invalid customer id", http.StatusBadRequest, nil)
		return
	}

	// Non-positive limits fall through to the service default of 5.
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			respondError(w, "Invalid limit", http.StatusBadRequest, nil)
			return
		}
	}

	orders, err := h.service.LatestOrdersByCustomer(r.Context(), customerID, limit)
	if err != nil {
		h.logger.Error("order_query_failed", "Failed to list customer orders", "", nil, err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ordersToResponse(orders))
}

func parsePeriodQuery(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam == "" || endParam == "" {
		respondError(w, "start and end query parameters are required", http.StatusBadRequest, nil)
		return time.Time{}, time.Time{}, false
	}

	start, err := parsePeriodBound(startParam, false)
	if err != nil {
		respondError(w, "Invalid start date", http.StatusBadRequest, nil)
		return time.Time{}, time.Time{}, false
	}
	end, err := parsePeriodBound(endParam, true)
	if err != nil {
		respondError(w, "Invalid end date", http.StatusBadRequest, nil)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func ordersToResponse(orders []*domain.Order) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = orderToResponse(order)
	}
	return resp
}

func orderToResponse(order *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total.StringFixed(2),
		PlacedAt:   order.PlacedAt,
		Containers: make([]ContainerResponse, len(order.Containers)),
	}
	for i, c := range order.Containers {
		resp.Containers[i] = ContainerResponse{
			ID:       c.ID,
			SizeID:   c.SizeID,
			SizeName: c.SizeName,
			MainIDs:  itemIDs(c.Mains),
			SideIDs:  itemIDs(c.Sides),
		}
	}
	return resp
}

func itemIDs(refs []domain.ItemRef) []int {
	ids := make([]int, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}
