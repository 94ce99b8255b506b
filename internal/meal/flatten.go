package meal

import (
	"strings"

	"whisked/internal/mealdb"
)

// UnflattenIngredients converts the 20 positional slots of a raw meal detail
// into a compact ingredient list. Both fields of a slot must be non-empty
// after trimming for the slot to be included; absent fields count as empty.
// Slot order is preserved and duplicates are kept.
func UnflattenIngredients(slots [mealdb.NumIngredientSlots]mealdb.IngredientSlot) []Ingredient {
	ingredients := make([]Ingredient, 0, len(slots))
	for _, slot := range slots {
		name := strings.TrimSpace(deref(slot.Name))
		measure := strings.TrimSpace(deref(slot.Measure))
		if name == "" || measure == "" {
			continue
		}
		ingredients = append(ingredients, Ingredient{Name: name, Measure: measure})
	}
	return ingredients
}

// FlattenIngredients converts an ingredient list back into 20 positional
// slots. Entries beyond the 20th are dropped silently; trailing slots are
// absent. Fields are written as-is, without re-validation, so a list entry
// with an empty name or measure survives flattening but would be dropped by
// a subsequent unflatten.
func FlattenIngredients(ingredients []Ingredient) [mealdb.NumIngredientSlots]mealdb.IngredientSlot {
	var slots [mealdb.NumIngredientSlots]mealdb.IngredientSlot
	for i := 0; i < len(ingredients) && i < mealdb.NumIngredientSlots; i++ {
		name := ingredients[i].Name
		measure := ingredients[i].Measure
		slots[i] = mealdb.IngredientSlot{Name: &name, Measure: &measure}
	}
	return slots
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
