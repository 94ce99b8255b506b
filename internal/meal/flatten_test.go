package meal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"whisked/internal/mealdb"
)

func strPtr(s string) *string {
	return &s
}

func TestUnflattenIngredients(t *testing.T) {
	var slots [mealdb.NumIngredientSlots]mealdb.IngredientSlot
	slots[0] = mealdb.IngredientSlot{Name: strPtr("Flour"), Measure: strPtr("200g")}
	slots[1] = mealdb.IngredientSlot{Name: strPtr("Sugar"), Measure: strPtr("1 cup")}

	ingredients := UnflattenIngredients(slots)

	assert.Equal(t, []Ingredient{
		{Name: "Flour", Measure: "200g"},
		{Name: "Sugar", Measure: "1 cup"},
	}, ingredients)
}

func TestUnflattenIngredients_DropsPartialSlots(t *testing.T) {
	// A slot needs both fields non-empty after trimming; a present measure
	// with an empty name is dropped, and vice versa.
	var slots [mealdb.NumIngredientSlots]mealdb.IngredientSlot
	slots[0] = mealdb.IngredientSlot{Name: strPtr("Flour"), Measure: strPtr("200g")}
	slots[1] = mealdb.IngredientSlot{Name: strPtr(""), Measure: strPtr("pinch")}
	slots[2] = mealdb.IngredientSlot{Name: strPtr("Salt"), Measure: strPtr("   ")}
	slots[3] = mealdb.IngredientSlot{Name: strPtr("Butter"), Measure: nil}

	ingredients := UnflattenIngredients(slots)

	assert.Equal(t, []Ingredient{{Name: "Flour", Measure: "200g"}}, ingredients)
}

func TestUnflattenIngredients_TrimsWhitespace(t *testing.T) {
	var slots [mealdb.NumIngredientSlots]mealdb.IngredientSlot
	slots[0] = mealdb.IngredientSlot{Name: strPtr("  Flour "), Measure: strPtr("\t200g\n")}

	ingredients := UnflattenIngredients(slots)

	assert.Equal(t, []Ingredient{{Name: "Flour", Measure: "200g"}}, ingredients)
}

func TestUnflattenIngredients_AllAbsent(t *testing.T) {
	var slots [mealdb.NumIngredientSlots]mealdb.IngredientSlot

	ingredients := UnflattenIngredients(slots)

	assert.Empty(t, ingredients)
}

func TestUnflattenIngredients_KeepsDuplicatesAndOrder(t *testing.T) {
	var slots [mealdb.NumIngredientSlots]mealdb.IngredientSlot
	slots[0] = mealdb.IngredientSlot{Name: strPtr("Egg"), Measure: strPtr("1")}
	slots[1] = mealdb.IngredientSlot{Name: strPtr("Egg"), Measure: strPtr("1")}

	ingredients := UnflattenIngredients(slots)

	assert.Len(t, ingredients, 2)
	assert.Equal(t, ingredients[0], ingredients[1])
	// Duplicate name/measure pairs collapse to the same display key.
	assert.Equal(t, ingredients[0].Key(), ingredients[1].Key())
}

func TestIngredientKey(t *testing.T) {
	assert.Equal(t, "Flour-200g", Ingredient{Name: "Flour", Measure: "200g"}.Key())
}

func TestFlattenIngredients(t *testing.T) {
	ingredients := []Ingredient{
		{Name: "Flour", Measure: "200g"},
		{Name: "Sugar", Measure: "1 cup"},
	}

	slots := FlattenIngredients(ingredients)

	assert.Equal(t, "Flour", *slots[0].Name)
	assert.Equal(t, "200g", *slots[0].Measure)
	assert.Equal(t, "Sugar", *slots[1].Name)
	assert.Equal(t, "1 cup", *slots[1].Measure)
	for i := 2; i < mealdb.NumIngredientSlots; i++ {
		assert.Nil(t, slots[i].Name)
		assert.Nil(t, slots[i].Measure)
	}
}

func TestFlattenIngredients_EmptyList(t *testing.T) {
	slots := FlattenIngredients(nil)

	for _, slot := range slots {
		assert.Nil(t, slot.Name)
		assert.Nil(t, slot.Measure)
	}
}

func TestFlattenIngredients_TruncatesAtTwenty(t *testing.T) {
	ingredients := make([]Ingredient, 25)
	for i := range ingredients {
		ingredients[i] = Ingredient{
			Name:    fmt.Sprintf("Ingredient %d", i+1),
			Measure: fmt.Sprintf("%d tbsp", i+1),
		}
	}

	slots := FlattenIngredients(ingredients)
	assert.Equal(t, "Ingredient 20", *slots[mealdb.NumIngredientSlots-1].Name)

	// Entries 21..25 are gone without error.
	roundTripped := UnflattenIngredients(slots)
	assert.Len(t, roundTripped, 20)
	assert.Equal(t, ingredients[:20], roundTripped)
}

func TestFlattenIngredients_DoesNotRevalidate(t *testing.T) {
	// Flattening writes fields as-is. An entry with an empty measure survives
	// the flatten but is dropped by the next unflatten, so flatten→unflatten
	// is not an identity in general.
	ingredients := []Ingredient{{Name: "Flour", Measure: ""}}

	slots := FlattenIngredients(ingredients)
	assert.Equal(t, "Flour", *slots[0].Name)
	assert.Equal(t, "", *slots[0].Measure)

	assert.Empty(t, UnflattenIngredients(slots))
}

func TestUnflattenFlattenUnflatten_Idempotent(t *testing.T) {
	// After one normalization pass, flattening and unflattening again must
	// not change the list.
	var raw [mealdb.NumIngredientSlots]mealdb.IngredientSlot
	raw[0] = mealdb.IngredientSlot{Name: strPtr(" Flour "), Measure: strPtr("200g")}
	raw[1] = mealdb.IngredientSlot{Name: strPtr(""), Measure: strPtr("pinch")}
	raw[2] = mealdb.IngredientSlot{Name: strPtr("Salt"), Measure: strPtr("1 tsp")}
	raw[19] = mealdb.IngredientSlot{Name: strPtr("Pepper"), Measure: strPtr("to taste")}

	once := UnflattenIngredients(raw)
	again := UnflattenIngredients(FlattenIngredients(once))

	assert.Equal(t, once, again)
}
