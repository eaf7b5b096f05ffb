package domain

import (
	"errors"
	"testing"
)

func TestCartStateTransitions(t *testing.T) {
	cart := NewCart()
	if cart.State != CartEmpty {
		t.Fatalf("new cart state = %s, want %s", cart.State, CartEmpty)
	}

	cart = cart.AddItem("Dr Pepper")
	if cart.State != CartBuilding {
		t.Errorf("state after AddItem = %s, want %s", cart.State, CartBuilding)
	}

	combo, err := NewCombo("bowl", map[string][]ItemRef{
		"entrees": {{ID: 3, Name: "Orange Chicken"}},
		"sides":   {{ID: 7, Name: "Fried Rice"}},
	})
	if err != nil {
		t.Fatalf("NewCombo: %v", err)
	}
	cart = cart.AddCombo(combo)

	checked, err := cart.Checkout()
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if checked.State != CartReadyToCheckout {
		t.Errorf("state after Checkout = %s, want %s", checked.State, CartReadyToCheckout)
	}

	cleared := checked.Clear()
	if cleared.State != CartCleared {
		t.Errorf("state after Clear = %s, want %s", cleared.State, CartCleared)
	}
	if len(cleared.Items) != 0 || len(cleared.Combos) != 0 {
		t.Error("cleared cart should be empty")
	}
}

func TestCartCheckoutWithoutCombos(t *testing.T) {
	cart := NewCart()
	if _, err := cart.Checkout(); err == nil {
		t.Error("checkout of empty cart should fail")
	}

	cart = cart.AddItem("Dr Pepper")
	if _, err := cart.Checkout(); err == nil {
		t.Error("checkout with no combos should fail")
	}
}

func TestCartOperationsAreImmutable(t *testing.T) {
	combo, _ := NewCombo("plate", map[string][]ItemRef{
		"entrees": {{ID: 1, Name: "Beijing Beef"}},
	})

	original := NewCart().AddCombo(combo)
	grown := original.AddCombo(combo)
	if len(original.Combos) != 1 {
		t.Errorf("original cart mutated: %d combos, want 1", len(original.Combos))
	}
	if len(grown.Combos) != 2 {
		t.Errorf("grown cart has %d combos, want 2", len(grown.Combos))
	}

	shrunk := grown.RemoveCombo(0)
	if len(grown.Combos) != 2 {
		t.Errorf("source cart mutated by RemoveCombo: %d combos, want 2", len(grown.Combos))
	}
	if len(shrunk.Combos) != 1 {
		t.Errorf("shrunk cart has %d combos, want 1", len(shrunk.Combos))
	}
}

func TestCartRemoveComboOutOfRange(t *testing.T) {
	combo, _ := NewCombo("bowl", map[string][]ItemRef{
		"entrees": {{ID: 1}},
	})
	cart := NewCart().AddCombo(combo)

	for _, i := range []int{-1, 1, 99} {
		got := cart.RemoveCombo(i)
		if len(got.Combos) != 1 {
			t.Errorf("RemoveCombo(%d) changed the cart", i)
		}
	}

	got := cart.RemoveCombo(0)
	if len(got.Combos) != 0 {
		t.Error("RemoveCombo(0) should remove the only combo")
	}
	if got.State != CartEmpty {
		t.Errorf("state after removing last combo = %s, want %s", got.State, CartEmpty)
	}
}

func TestNewComboRejectsUnknownCategory(t *testing.T) {
	_, err := NewCombo("bowl", map[string][]ItemRef{
		"dessert": {{ID: 9, Name: "Fortune Cookie"}},
	})
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
}

func TestNewComboCategoryAliases(t *testing.T) {
	combo, err := NewCombo("plate", map[string][]ItemRef{
		"main":  {{ID: 1}},
		"sides": {{ID: 2}},
	})
	if err != nil {
		t.Fatalf("NewCombo: %v", err)
	}
	if len(combo.Mains) != 1 || len(combo.Sides) != 1 {
		t.Errorf("combo = %d mains, %d sides; want 1 and 1", len(combo.Mains), len(combo.Sides))
	}
}

func TestCartContainersCopiesSelections(t *testing.T) {
	combo, _ := NewCombo("bowl", map[string][]ItemRef{
		"entrees": {{ID: 3, Name: "Orange Chicken"}},
		"sides":   {{ID: 7, Name: "Fried Rice"}},
	})
	cart := NewCart().AddCombo(combo)

	containers := cart.Containers()
	if len(containers) != 1 {
		t.Fatalf("containers = %d, want 1", len(containers))
	}
	if containers[0].SizeName != "bowl" {
		t.Errorf("size name = %q, want bowl", containers[0].SizeName)
	}

	containers[0].Mains[0].Name = "changed"
	if cart.Combos[0].Mains[0].Name != "Orange Chicken" {
		t.Error("mutating the draft container leaked into the cart")
	}
}
