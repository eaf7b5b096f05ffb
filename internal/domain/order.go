package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ItemRole string

const (
	RoleMain ItemRole = "main"
	RoleSide ItemRole = "side"
)

// ItemRef is a menu item reference carried by a container linkage.
type ItemRef struct {
	ID   int
	Name string
}

// Container is one portion-sized grouping within an order (e.g. one bowl).
// It is created atomically with its order and never mutated afterwards.
type Container struct {
	ID       int
	OrderID  int
	SizeID   int
	SizeName string
	Mains    []ItemRef
	Sides    []ItemRef
}

// Order is a placed customer order. Total is the exact decimal sum of the
// container size prices current at placement time and never drifts if the
// catalog changes later.
type Order struct {
	ID         int
	CustomerID int
	Total      decimal.Decimal
	PlacedAt   time.Time
	Containers []Container
}

// NewOrder composes an order from containers whose sizes have already been
// resolved. sizes must line up with containers by position. Slot counts of
// each size bound the number of main/side selections.
func NewOrder(customerID int, containers []Container, sizes []Size) (*Order, error) {
	if customerID < 1 {
		return nil, &ValidationError{Field: "customer_id", Message: "customer id is required"}
	}
	if len(containers) < 1 {
		return nil, &ValidationError{Field: "containers", Message: "order must contain at least 1 container"}
	}
	if len(containers) != len(sizes) {
		return nil, &ValidationError{Field: "containers", Message: "every container needs a resolved size"}
	}

	total := decimal.Zero
	for i := range containers {
		size := sizes[i]
		containers[i].SizeID = size.ID
		containers[i].SizeName = size.Name

		if err := validateSlots(containers[i], size); err != nil {
			return nil, err
		}
		total = total.Add(size.Price)
	}

	return &Order{
		CustomerID: customerID,
		Total:      total,
		PlacedAt:   time.Now().UTC(),
		Containers: containers,
	}, nil
}

func validateSlots(c Container, size Size) error {
	if len(c.Mains) > size.NumMains {
		return &ValidationError{
			Field:   "mains",
			Message: fmt.Sprintf("size %q holds at most %d main selections", size.Name, size.NumMains),
		}
	}
	if len(c.Sides) > size.NumSides {
		return &ValidationError{
			Field:   "sides",
			Message: fmt.Sprintf("size %q holds at most %d side selections", size.Name, size.NumSides),
		}
	}
	return nil
}
