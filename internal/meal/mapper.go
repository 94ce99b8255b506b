package meal

import (
	"context"
	"errors"
	"net"

	"whisked/internal/mealdb"
)

// CategoryFromRaw maps a raw category record into the domain shape.
func CategoryFromRaw(raw mealdb.RawCategory) Category {
	return Category{
		ID:           raw.ID,
		Name:         raw.Name,
		Description:  raw.Description,
		ThumbnailURL: raw.Thumbnail,
	}
}

// CategoriesFromRaw maps a raw category list, preserving order.
func CategoriesFromRaw(raw []mealdb.RawCategory) []Category {
	categories := make([]Category, len(raw))
	for i, r := range raw {
		categories[i] = CategoryFromRaw(r)
	}
	return categories
}

// SummaryFromRaw maps a raw meal summary into the domain shape.
func SummaryFromRaw(raw mealdb.RawMealSummary) Summary {
	return Summary{
		ID:           raw.ID,
		Name:         raw.Name,
		ThumbnailURL: raw.Thumbnail,
	}
}

// SummariesFromRaw maps a raw meal summary list, preserving order.
func SummariesFromRaw(raw []mealdb.RawMealSummary) []Summary {
	summaries := make([]Summary, len(raw))
	for i, r := range raw {
		summaries[i] = SummaryFromRaw(r)
	}
	return summaries
}

// DetailFromRaw maps a raw meal detail into the domain shape, unflattening
// the positional ingredient fields into a compact list.
func DetailFromRaw(raw *mealdb.RawMealDetail) *Detail {
	return &Detail{
		ID:           raw.ID,
		Name:         raw.Name,
		Instructions: raw.Instructions,
		ThumbnailURL: raw.Thumbnail,
		Ingredients:  UnflattenIngredients(raw.IngredientSlots()),
	}
}

// MapError classifies any transport-side error into the closed domain error
// set. It is total: whatever comes in, a *Error comes out, and the raw
// transport error never crosses this boundary.
func MapError(err error) *Error {
	if err == nil {
		return &Error{Kind: ErrorKindUnknown}
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &Error{Kind: ErrorKindCancelled}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: ErrorKindTimeout}
	case errors.Is(err, mealdb.ErrNotFound):
		return &Error{Kind: ErrorKindMealNotFound}
	case errors.Is(err, mealdb.ErrNoResults):
		return &Error{Kind: ErrorKindNoMealsFound}
	case errors.Is(err, mealdb.ErrInvalidResponse):
		return &Error{Kind: ErrorKindInvalidResponse}
	}

	var statusErr *mealdb.StatusError
	if errors.As(err, &statusErr) {
		return &Error{Kind: ErrorKindServerError, StatusCode: statusErr.Code}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: ErrorKindTimeout}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &Error{Kind: ErrorKindNoConnection}
	}

	if msg := err.Error(); msg != "" {
		return &Error{Kind: ErrorKindNetworkError, Message: msg}
	}
	return &Error{Kind: ErrorKindUnknown}
}
