package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"whisked/internal/favorite"
	"whisked/internal/meal"
)

// statusClientClosedRequest mirrors the nginx convention for requests the
// client abandoned; nothing useful can be rendered to a caller that left.
const statusClientClosedRequest = 499

const (
	upstreamTimeout = 15 * time.Second
	storeTimeout    = 5 * time.Second
)

// MealService defines the retrieval operations the handlers consume.
type MealService interface {
	FetchCategories(ctx context.Context) ([]meal.Category, error)
	FetchMeals(ctx context.Context, category string) ([]meal.Summary, error)
	FetchMealDetail(ctx context.Context, id string) (*meal.Detail, error)
}

// FavoriteStore defines the favorite operations the handlers consume.
type FavoriteStore interface {
	Add(ctx context.Context, mealID string) error
	Remove(ctx context.Context, mealID string) error
	Toggle(ctx context.Context, mealID string) (bool, error)
	IsFavorite(ctx context.Context, mealID string) (bool, error)
	FetchAll(ctx context.Context) ([]favorite.Record, error)
	Count(ctx context.Context) (int, error)
	ClearAll(ctx context.Context) error
}

// Handler handles HTTP requests.
type Handler struct {
	MealService   MealService
	FavoriteStore FavoriteStore
}

// NewHandler creates a new Handler.
func NewHandler(mealService MealService, favoriteStore FavoriteStore) *Handler {
	return &Handler{
		MealService:   mealService,
		FavoriteStore: favoriteStore,
	}
}

// GetCategories handles requests for the category list.
func (h *Handler) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	categories, err := h.MealService.FetchCategories(ctx)
	if err != nil {
		h.writeMealError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetMeals handles requests for the meals of a category.
func (h *Handler) GetMeals(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.String(http.StatusBadRequest, "category query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	meals, err := h.MealService.FetchMeals(ctx, category)
	if err != nil {
		h.writeMealError(c, err)
		return
	}

	c.JSON(http.StatusOK, meals)
}

// GetMealDetail handles requests for a single meal by id.
func (h *Handler) GetMealDetail(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	detail, err := h.MealService.FetchMealDetail(ctx, id)
	if err != nil {
		h.writeMealError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetFavorites handles requests for the full favorites list.
func (h *Handler) GetFavorites(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	records, err := h.FavoriteStore.FetchAll(ctx)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetFavoriteCount handles requests for the favorites count.
func (h *Handler) GetFavoriteCount(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	count, err := h.FavoriteStore.Count(ctx)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetFavorite handles requests for the favorite state of a single meal.
func (h *Handler) GetFavorite(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	isFavorite, err := h.FavoriteStore.IsFavorite(ctx, id)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_id": id, "favorite": isFavorite})
}

// AddFavorite handles idempotent favorite creation.
func (h *Handler) AddFavorite(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	if err := h.FavoriteStore.Add(ctx, id); err != nil {
		h.writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_id": id, "favorite": true})
}

// RemoveFavorite handles idempotent favorite removal.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	if err := h.FavoriteStore.Remove(ctx, id); err != nil {
		h.writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_id": id, "favorite": false})
}

// ToggleFavorite flips the favorite state of a meal and returns the new state.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	isFavorite, err := h.FavoriteStore.Toggle(ctx, id)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_id": id, "favorite": isFavorite})
}

// ClearFavorites handles removal of every favorite.
func (h *Handler) ClearFavorites(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	if err := h.FavoriteStore.ClearAll(ctx); err != nil {
		h.writeStoreError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeMealError renders a domain error as an HTTP response. Cancellation is
// suppressed: the client is gone, so no error payload is written.
func (h *Handler) writeMealError(c *gin.Context, err error) {
	var domainErr *meal.Error
	if !errors.As(err, &domainErr) {
		log.Printf("unexpected non-domain error from meal service: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	switch domainErr.Kind {
	case meal.ErrorKindCancelled:
		c.Status(statusClientClosedRequest)
	case meal.ErrorKindTimeout:
		c.String(http.StatusGatewayTimeout, "upstream request timed out")
	case meal.ErrorKindNoConnection:
		c.String(http.StatusServiceUnavailable, "upstream unreachable")
	case meal.ErrorKindMealNotFound:
		c.String(http.StatusNotFound, "meal not found")
	case meal.ErrorKindNoMealsFound:
		c.String(http.StatusNotFound, "no meals found")
	case meal.ErrorKindServerError:
		c.String(http.StatusBadGateway, fmt.Sprintf("upstream error (status %d)", domainErr.StatusCode))
	case meal.ErrorKindInvalidResponse, meal.ErrorKindNetworkError:
		log.Printf("upstream failure: %v", domainErr)
		c.String(http.StatusBadGateway, "upstream error")
	default:
		log.Printf("unknown meal error: %v", domainErr)
		c.String(http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) writeStoreError(c *gin.Context, err error) {
	log.Printf("favorites store error: %v", err)
	c.String(http.StatusInternalServerError, fmt.Sprintf("database error: %s", err.Error()))
}
