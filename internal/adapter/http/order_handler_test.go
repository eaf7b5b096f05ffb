package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/domain"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"

	"github.com/shopspring/decimal"
)

type fakeOrderService struct {
	placeErr  error
	placed    *domain.Order
	orders    map[int]*domain.Order
	lastLimit int
}

func (s *fakeOrderService) PlaceOrder(ctx context.Context, cmd interfaces.PlaceOrderCommand) (*domain.Order, error) {
	if s.placeErr != nil {
		return nil, s.placeErr
	}
	return s.placed, nil
}

func (s *fakeOrderService) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (s *fakeOrderService) LatestOrdersByCustomer(ctx context.Context, customerID, limit int) ([]*domain.Order, error) {
	s.lastLimit = limit
	var orders []*domain.Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *fakeOrderService) OrdersWithinPeriod(ctx context.Context, start, end time.Time) ([]*domain.Order, error) {
	return nil, nil
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:         12,
		CustomerID: 1,
		Total:      decimal.RequireFromString("18.00"),
		PlacedAt:   time.Date(2024, 11, 5, 18, 30, 0, 0, time.UTC),
		Containers: []domain.Container{
			{
				ID:       1201,
				OrderID:  12,
				SizeID:   1,
				SizeName: "bowl",
				Mains:    []domain.ItemRef{{ID: 3, Name: "Orange Chicken"}, {ID: 5, Name: "Beijing Beef"}},
				Sides:    []domain.ItemRef{{ID: 7, Name: "Fried Rice"}},
			},
		},
	}
}

func TestPlaceOrderEndpoint(t *testing.T) {
	handler := NewOrderHandler(&fakeOrderService{placed: sampleOrder()}, logger.New("test"))

	body := `{"customer_id": 1, "containers": [{"size_id": 1, "main_ids": [3, 5], "side_ids": [7]}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleOrders(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp PlaceOrderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OrderID != 12 {
		t.Errorf("order id = %d, want 12", resp.OrderID)
	}
	if resp.Total != "18.00" {
		t.Errorf("total = %q, want 18.00", resp.Total)
	}
}

func TestPlaceOrderEndpointValidation(t *testing.T) {
	handler := NewOrderHandler(&fakeOrderService{placed: sampleOrder()}, logger.New("test"))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing customer", `{"containers": [{"size_id": 1}]}`},
		{"no containers", `{"customer_id": 1, "containers": []}`},
		{"container without size", `{"customer_id": 1, "containers": [{"main_ids": [3]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.HandleOrders(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestPlaceOrderEndpointUnknownSize(t *testing.T) {
	svc := &fakeOrderService{placeErr: &domain.UnknownSizeError{Name: "mega"}}
	handler := NewOrderHandler(svc, logger.New("test"))

	body := `{"customer_id": 1, "containers": [{"size_name": "mega"}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleOrders(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if !strings.Contains(rec.Body.String(), "unknown size") {
		t.Errorf("body should name the unknown size: %s", rec.Body.String())
	}
}

func TestPlaceOrderEndpointStorageFailureIsOpaque(t *testing.T) {
	svc := &fakeOrderService{placeErr: domain.ErrPersistence}
	handler := NewOrderHandler(svc, logger.New("test"))

	body := `{"customer_id": 1, "containers": [{"size_id": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleOrders(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rec.Body.String(), "persistence") {
		t.Errorf("storage details leaked to the caller: %s", rec.Body.String())
	}
}

func TestGetOrderEndpoint(t *testing.T) {
	order := sampleOrder()
	svc := &fakeOrderService{orders: map[int]*domain.Order{order.ID: order}}
	handler := NewOrderHandler(svc, logger.New("test"))

	req := httptest.NewRequest(http.MethodGet, "/orders/12", nil)
	rec := httptest.NewRecorder()

	handler.HandleOrderByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp OrderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != "18.00" {
		t.Errorf("total = %q, want 18.00", resp.Total)
	}
	if len(resp.Containers) != 1 {
		t.Fatalf("containers = %d, want 1", len(resp.Containers))
	}
	if got := resp.Containers[0].MainIDs; len(got) != 2 {
		t.Errorf("main ids = %v, want two entries", got)
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	svc := &fakeOrderService{orders: map[int]*domain.Order{}}
	handler := NewOrderHandler(svc, logger.New("test"))

	req := httptest.NewRequest(http.MethodGet, "/orders/99", nil)
	rec := httptest.NewRecorder()

	handler.HandleOrderByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCustomerOrdersLimitHandling(t *testing.T) {
	svc := &fakeOrderService{orders: map[int]*domain.Order{}}
	handler := NewOrderHandler(svc, logger.New("test"))

	tests := []struct {
		name      string
		target    string
		status    int
		wantLimit int
	}{
		{"explicit limit", "/customers/1/orders?limit=3", http.StatusOK, 3},
		{"missing limit left to service default", "/customers/1/orders", http.StatusOK, 0},
		{"zero limit left to service default", "/customers/1/orders?limit=0", http.StatusOK, 0},
		{"negative limit left to service default", "/customers/1/orders?limit=-2", http.StatusOK, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			handler.HandleCustomerOrders(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if svc.lastLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", svc.lastLimit, tt.wantLimit)
			}
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/customers/1/orders?limit=abc", nil)
	rec := httptest.NewRecorder()
	handler.HandleCustomerOrders(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric limit status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestOrdersWithinPeriodRejectsBadDates(t *testing.T) {
	handler := NewOrderHandler(&fakeOrderService{}, logger.New("test"))

	tests := []string{
		"/orders",
		"/orders?start=2024-11-01",
		"/orders?start=yesterday&end=2024-11-05",
	}
	for _, target := range tests {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		handler.HandleOrders(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestPeriodBoundParsing(t *testing.T) {
	start, err := parsePeriodBound("2024-11-01", false)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	end, err := parsePeriodBound("2024-11-01", true)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}

	if !start.Equal(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want midnight", start)
	}
	// Date-only end bounds cover the whole day.
	if !end.After(time.Date(2024, 11, 1, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("end = %v, should reach end of day", end)
	}
	if !end.Before(time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, should stay within the day", end)
	}
}
