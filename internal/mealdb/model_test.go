package mealdb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestIngredientSlotsRoundTrip(t *testing.T) {
	var slots [NumIngredientSlots]IngredientSlot
	slots[0] = IngredientSlot{Name: ptr("Lentils"), Measure: ptr("1 cup")}
	slots[7] = IngredientSlot{Name: ptr("Paprika"), Measure: ptr("1 tsp")}
	slots[19] = IngredientSlot{Name: ptr("Water"), Measure: ptr("1l")}

	var detail RawMealDetail
	detail.SetIngredientSlots(slots)

	assert.Equal(t, slots, detail.IngredientSlots())
	assert.Equal(t, "Paprika", *detail.StrIngredient8)
	assert.Equal(t, "Water", *detail.StrIngredient20)
	assert.Equal(t, "Lentils", *detail.StrIngredient1)
	assert.Equal(t, "1 cup", *detail.StrMeasure1)
	assert.Nil(t, detail.StrIngredient2)
	assert.Nil(t, detail.StrMeasure2)
}

func TestRawMealDetailDecode(t *testing.T) {
	payload := `{
		"idMeal": "52977",
		"strMeal": "Corba",
		"strInstructions": "Pick through your lentils...",
		"strMealThumb": "https://example.com/corba.jpg",
		"strIngredient1": "Lentils",
		"strMeasure1": "1 cup",
		"strIngredient2": null,
		"strMeasure2": null
	}`

	var detail RawMealDetail
	require.NoError(t, json.Unmarshal([]byte(payload), &detail))

	slots := detail.IngredientSlots()
	require.NotNil(t, slots[0].Name)
	assert.Equal(t, "Lentils", *slots[0].Name)
	assert.Nil(t, slots[1].Name)
	assert.Nil(t, slots[1].Measure)
	assert.Nil(t, slots[2].Name)
}
