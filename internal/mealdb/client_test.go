package mealdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second)
}

func TestGetCategoryList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories.php", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"categories":[
			{"idCategory":"1","strCategory":"Beef","strCategoryDescription":"Beef dishes","strCategoryThumb":"https://example.com/beef.png"},
			{"idCategory":"2","strCategory":"Dessert","strCategoryDescription":"Sweet things","strCategoryThumb":"https://example.com/dessert.png"}
		]}`))
	})

	categories, err := client.GetCategoryList(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, RawCategory{
		ID:          "1",
		Name:        "Beef",
		Description: "Beef dishes",
		Thumbnail:   "https://example.com/beef.png",
	}, categories[0])
}

func TestGetMeals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter.php", r.URL.Path)
		assert.Equal(t, "Side", r.URL.Query().Get("c"))
		w.Write([]byte(`{"meals":[{"idMeal":"52977","strMeal":"Corba","strMealThumb":"https://example.com/corba.jpg"}]}`))
	})

	meals, err := client.GetMeals(context.Background(), "Side")

	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "52977", meals[0].ID)
}

func TestGetMeals_NullMeals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	})

	_, err := client.GetMeals(context.Background(), "Nonexistent")

	assert.ErrorIs(t, err, ErrNoResults)
}

func TestGetMealDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup.php", r.URL.Path)
		assert.Equal(t, "52977", r.URL.Query().Get("i"))
		w.Write([]byte(`{"meals":[{
			"idMeal":"52977",
			"strMeal":"Corba",
			"strInstructions":"Pick through your lentils...",
			"strMealThumb":"https://example.com/corba.jpg",
			"strIngredient1":"Lentils",
			"strMeasure1":"1 cup",
			"strIngredient2":"",
			"strMeasure2":""
		}]}`))
	})

	detail, err := client.GetMealDetail(context.Background(), "52977")

	require.NoError(t, err)
	assert.Equal(t, "52977", detail.ID)
	assert.Equal(t, "Corba", detail.Name)
	require.NotNil(t, detail.StrIngredient1)
	assert.Equal(t, "Lentils", *detail.StrIngredient1)
	require.NotNil(t, detail.StrIngredient2)
	assert.Equal(t, "", *detail.StrIngredient2)
	assert.Nil(t, detail.StrIngredient3)
}

func TestGetMealDetail_NullMeals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	})

	_, err := client.GetMealDetail(context.Background(), "0")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetMealDetail(context.Background(), "52977")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestGet_InvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals": [`))
	})

	_, err := client.GetCategoryList(context.Background())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGet_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetCategoryList(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
