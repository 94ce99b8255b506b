package meal

import (
	"context"

	"whisked/internal/mealdb"
)

// Transport defines the upstream API calls the service depends on.
type Transport interface {
	GetCategoryList(ctx context.Context) ([]mealdb.RawCategory, error)
	GetMeals(ctx context.Context, category string) ([]mealdb.RawMealSummary, error)
	GetMealDetail(ctx context.Context, id string) (*mealdb.RawMealDetail, error)
}

// Service retrieves meals from the transport and returns domain records.
// Errors are always the domain *Error type; no retry or caching happens here.
type Service struct {
	transport Transport
}

// NewService creates a Service on top of a transport.
func NewService(transport Transport) *Service {
	return &Service{transport: transport}
}

// FetchCategories returns all meal categories.
func (s *Service) FetchCategories(ctx context.Context) ([]Category, error) {
	raw, err := s.transport.GetCategoryList(ctx)
	if err != nil {
		return nil, MapError(err)
	}
	return CategoriesFromRaw(raw), nil
}

// FetchMeals returns the meal summaries for a category name. An empty result
// surfaces as NoMealsFound.
func (s *Service) FetchMeals(ctx context.Context, category string) ([]Summary, error) {
	raw, err := s.transport.GetMeals(ctx, category)
	if err != nil {
		return nil, MapError(err)
	}
	if len(raw) == 0 {
		return nil, &Error{Kind: ErrorKindNoMealsFound}
	}
	return SummariesFromRaw(raw), nil
}

// FetchMealDetail returns the full record for a meal id.
func (s *Service) FetchMealDetail(ctx context.Context, id string) (*Detail, error) {
	raw, err := s.transport.GetMealDetail(ctx, id)
	if err != nil {
		return nil, MapError(err)
	}
	return DetailFromRaw(raw), nil
}
