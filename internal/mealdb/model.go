package mealdb

// RawCategory is a single category as returned by the upstream API.
type RawCategory struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Description string `json:"strCategoryDescription"`
	Thumbnail   string `json:"strCategoryThumb"`
}

// RawMealSummary is the compact meal record returned by category filtering.
type RawMealSummary struct {
	ID        string `json:"idMeal"`
	Name      string `json:"strMeal"`
	Thumbnail string `json:"strMealThumb"`
}

// IngredientSlot is one positional ingredient/measure pair from a raw meal
// detail. Nil fields mean the slot was absent in the payload.
type IngredientSlot struct {
	Name    *string
	Measure *string
}

// RawMealDetail is the full meal record. The upstream schema flattens the
// ingredient list into 20 positional field pairs; position determines pairing.
type RawMealDetail struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Instructions string `json:"strInstructions"`
	Thumbnail    string `json:"strMealThumb"`

	StrIngredient1  *string `json:"strIngredient1"`
	StrIngredient2  *string `json:"strIngredient2"`
	StrIngredient3  *string `json:"strIngredient3"`
	StrIngredient4  *string `json:"strIngredient4"`
	StrIngredient5  *string `json:"strIngredient5"`
	StrIngredient6  *string `json:"strIngredient6"`
	StrIngredient7  *string `json:"strIngredient7"`
	StrIngredient8  *string `json:"strIngredient8"`
	StrIngredient9  *string `json:"strIngredient9"`
	StrIngredient10 *string `json:"strIngredient10"`
	StrIngredient11 *string `json:"strIngredient11"`
	StrIngredient12 *string `json:"strIngredient12"`
	StrIngredient13 *string `json:"strIngredient13"`
	StrIngredient14 *string `json:"strIngredient14"`
	StrIngredient15 *string `json:"strIngredient15"`
	StrIngredient16 *string `json:"strIngredient16"`
	StrIngredient17 *string `json:"strIngredient17"`
	StrIngredient18 *string `json:"strIngredient18"`
	StrIngredient19 *string `json:"strIngredient19"`
	StrIngredient20 *string `json:"strIngredient20"`

	StrMeasure1  *string `json:"strMeasure1"`
	StrMeasure2  *string `json:"strMeasure2"`
	StrMeasure3  *string `json:"strMeasure3"`
	StrMeasure4  *string `json:"strMeasure4"`
	StrMeasure5  *string `json:"strMeasure5"`
	StrMeasure6  *string `json:"strMeasure6"`
	StrMeasure7  *string `json:"strMeasure7"`
	StrMeasure8  *string `json:"strMeasure8"`
	StrMeasure9  *string `json:"strMeasure9"`
	StrMeasure10 *string `json:"strMeasure10"`
	StrMeasure11 *string `json:"strMeasure11"`
	StrMeasure12 *string `json:"strMeasure12"`
	StrMeasure13 *string `json:"strMeasure13"`
	StrMeasure14 *string `json:"strMeasure14"`
	StrMeasure15 *string `json:"strMeasure15"`
	StrMeasure16 *string `json:"strMeasure16"`
	StrMeasure17 *string `json:"strMeasure17"`
	StrMeasure18 *string `json:"strMeasure18"`
	StrMeasure19 *string `json:"strMeasure19"`
	StrMeasure20 *string `json:"strMeasure20"`
}

// NumIngredientSlots is the fixed width of the flattened ingredient record.
const NumIngredientSlots = 20

// IngredientSlots returns the 20 positional ingredient/measure pairs in
// ascending field order.
func (m *RawMealDetail) IngredientSlots() [NumIngredientSlots]IngredientSlot {
	return [NumIngredientSlots]IngredientSlot{
		{m.StrIngredient1, m.StrMeasure1},
		{m.StrIngredient2, m.StrMeasure2},
		{m.StrIngredient3, m.StrMeasure3},
		{m.StrIngredient4, m.StrMeasure4},
		{m.StrIngredient5, m.StrMeasure5},
		{m.StrIngredient6, m.StrMeasure6},
		{m.StrIngredient7, m.StrMeasure7},
		{m.StrIngredient8, m.StrMeasure8},
		{m.StrIngredient9, m.StrMeasure9},
		{m.StrIngredient10, m.StrMeasure10},
		{m.StrIngredient11, m.StrMeasure11},
		{m.StrIngredient12, m.StrMeasure12},
		{m.StrIngredient13, m.StrMeasure13},
		{m.StrIngredient14, m.StrMeasure14},
		{m.StrIngredient15, m.StrMeasure15},
		{m.StrIngredient16, m.StrMeasure16},
		{m.StrIngredient17, m.StrMeasure17},
		{m.StrIngredient18, m.StrMeasure18},
		{m.StrIngredient19, m.StrMeasure19},
		{m.StrIngredient20, m.StrMeasure20},
	}
}

// SetIngredientSlots writes the 20 positional pairs back onto the flattened
// fields, overwriting all of them.
func (m *RawMealDetail) SetIngredientSlots(slots [NumIngredientSlots]IngredientSlot) {
	names := [NumIngredientSlots]**string{
		&m.StrIngredient1, &m.StrIngredient2, &m.StrIngredient3, &m.StrIngredient4,
		&m.StrIngredient5, &m.StrIngredient6, &m.StrIngredient7, &m.StrIngredient8,
		&m.StrIngredient9, &m.StrIngredient10, &m.StrIngredient11, &m.StrIngredient12,
		&m.StrIngredient13, &m.StrIngredient14, &m.StrIngredient15, &m.StrIngredient16,
		&m.StrIngredient17, &m.StrIngredient18, &m.StrIngredient19, &m.StrIngredient20,
	}
	measures := [NumIngredientSlots]**string{
		&m.StrMeasure1, &m.StrMeasure2, &m.StrMeasure3, &m.StrMeasure4,
		&m.StrMeasure5, &m.StrMeasure6, &m.StrMeasure7, &m.StrMeasure8,
		&m.StrMeasure9, &m.StrMeasure10, &m.StrMeasure11, &m.StrMeasure12,
		&m.StrMeasure13, &m.StrMeasure14, &m.StrMeasure15, &m.StrMeasure16,
		&m.StrMeasure17, &m.StrMeasure18, &m.StrMeasure19, &m.StrMeasure20,
	}
	for i, slot := range slots {
		*names[i] = slot.Name
		*measures[i] = slot.Measure
	}
}
