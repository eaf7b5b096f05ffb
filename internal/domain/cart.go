package domain

import "fmt"

type CartState string

const (
	CartEmpty           CartState = "empty"
	CartBuilding        CartState = "building"
	CartReadyToCheckout CartState = "ready_to_checkout"
	CartCleared         CartState = "cleared"
)

// Combo is a cart-level grouping of selections destined to become one
// container at order placement. Selections are tagged by role rather than
// kept in an open category map, so an invalid category is rejected when the
// combo is constructed, not when the order is placed.
type Combo struct {
	SizeName string
	Mains    []ItemRef
	Sides    []ItemRef
}

// NewCombo builds a combo from category-keyed selections as they arrive from
// the ordering UI. Recognized categories are "main" and "side" (singular or
// plural, "entree"/"entrees" accepted as mains).
func NewCombo(sizeName string, selections map[string][]ItemRef) (Combo, error) {
	if sizeName == "" {
		return Combo{}, &ValidationError{Field: "size", Message: "combo size name is required"}
	}

	combo := Combo{SizeName: sizeName}
	for category, items := range selections {
		switch category {
		case "main", "mains", "entree", "entrees":
			combo.Mains = append(combo.Mains, items...)
		case "side", "sides":
			combo.Sides = append(combo.Sides, items...)
		default:
			return Combo{}, &ValidationError{
				Field:   "category",
				Message: fmt.Sprintf("unknown selection category %q", category),
			}
		}
	}
	return combo, nil
}

// Cart accumulates selections before the single commit point at checkout.
// It is an immutable value: every operation returns a fresh cart and never
// aliases slices with its input, so concurrent UI panels reading the same
// cart cannot observe each other's edits.
type Cart struct {
	State  CartState
	Items  []string
	Combos []Combo
}

func NewCart() Cart {
	return Cart{State: CartEmpty}
}

// AddItem appends a standalone item by name.
func (c Cart) AddItem(name string) Cart {
	next := c.clone()
	next.Items = append(next.Items, name)
	next.State = CartBuilding
	return next
}

// AddCombo appends a combo entry.
func (c Cart) AddCombo(combo Combo) Cart {
	next := c.clone()
	next.Combos = append(next.Combos, combo)
	next.State = CartBuilding
	return next
}

// RemoveCombo removes the combo at position i. An out-of-range index is a
// no-op, matching forgiving UI semantics.
func (c Cart) RemoveCombo(i int) Cart {
	if i < 0 || i >= len(c.Combos) {
		return c
	}
	next := c.clone()
	next.Combos = append(next.Combos[:i], next.Combos[i+1:]...)
	if len(next.Combos) == 0 && len(next.Items) == 0 {
		next.State = CartEmpty
	}
	return next
}

// Checkout freezes the cart for order placement. A cart with no combos has
// nothing to compose into containers.
func (c Cart) Checkout() (Cart, error) {
	if c.State != CartBuilding || len(c.Combos) == 0 {
		return c, &ValidationError{Field: "cart", Message: "cart has no combos to check out"}
	}
	next := c.clone()
	next.State = CartReadyToCheckout
	return next, nil
}

// Clear empties the cart after a successful order placement.
func (c Cart) Clear() Cart {
	return Cart{State: CartCleared}
}

// Containers converts the checked-out combos into container drafts, one per
// combo, ready for size resolution.
func (c Cart) Containers() []Container {
	containers := make([]Container, len(c.Combos))
	for i, combo := range c.Combos {
		containers[i] = Container{
			SizeName: combo.SizeName,
			Mains:    append([]ItemRef(nil), combo.Mains...),
			Sides:    append([]ItemRef(nil), combo.Sides...),
		}
	}
	return containers
}

func (c Cart) clone() Cart {
	return Cart{
		State:  c.State,
		Items:  append([]string(nil), c.Items...),
		Combos: append([]Combo(nil), c.Combos...),
	}
}
