package meal

// Category is a browsable meal category.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Summary is the compact meal record shown in category listings.
type Summary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Ingredient is a single ingredient with its measure.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Key returns a display key for the ingredient. Uniqueness is not enforced;
// duplicate name/measure pairs collapse to the same key.
func (i Ingredient) Key() string {
	return i.Name + "-" + i.Measure
}

// Detail is the full meal record. Ingredients are always the compact list
// form; the upstream's flattened representation never leaves the mapping
// layer.
type Detail struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Instructions string       `json:"instructions"`
	ThumbnailURL string       `json:"thumbnail_url"`
	Ingredients  []Ingredient `json:"ingredients"`
}
