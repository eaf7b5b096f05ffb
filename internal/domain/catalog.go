package domain

import "github.com/shopspring/decimal"

type MenuItemType string

const (
	MenuItemEntree    MenuItemType = "ENTREE"
	MenuItemSide      MenuItemType = "SIDE"
	MenuItemDrink     MenuItemType = "DRINK"
	MenuItemAppetizer MenuItemType = "APPETIZER"
)

func (t MenuItemType) Valid() bool {
	switch t {
	case MenuItemEntree, MenuItemSide, MenuItemDrink, MenuItemAppetizer:
		return true
	}
	return false
}

// Size is reference catalog data: the price of a container and how many
// main/side selections it holds. Historical orders keep the total computed
// from the price that was current when they were placed.
type Size struct {
	ID       int
	Name     string
	Price    decimal.Decimal
	NumMains int
	NumSides int
}

// MenuItem is an orderable item referenced by id from container linkages.
type MenuItem struct {
	ID   int
	Name string
	Type MenuItemType
}

// Validate applies creation rules for menu items.
func (m *MenuItem) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "name", Message: "item name is required"}
	}
	if len(m.Name) > 100 {
		return &ValidationError{Field: "name", Message: "item name must not exceed 100 characters"}
	}
	if !m.Type.Valid() {
		return &ValidationError{Field: "type", Message: "item type must be one of: ENTREE, SIDE, DRINK, APPETIZER"}
	}
	return nil
}

// Validate applies creation rules for sizes.
func (s *Size) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "size name is required"}
	}
	if s.Price.IsNegative() {
		return &ValidationError{Field: "price", Message: "size price must not be negative"}
	}
	if s.NumMains < 0 || s.NumSides < 0 {
		return &ValidationError{Field: "slots", Message: "slot counts must not be negative"}
	}
	return nil
}
