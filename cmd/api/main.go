package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"whisked/internal/api"
	"whisked/internal/favorite"
	"whisked/internal/meal"
	"whisked/internal/mealdb"
)

// Config represents the application configuration.
type Config struct {
	Port            string `json:"port"`
	AllowedOrigin   string `json:"allowed_origin"`
	DatabaseURL     string `json:"DATABASE_URL"`
	MealDBBaseURL   string `json:"mealdb_base_url"`
	UpstreamTimeout int    `json:"upstream_timeout_seconds"`
}

func loadConfig() Config {
	// .env is optional; environment variables win over config.json.
	_ = godotenv.Load()

	config := Config{
		Port:          "8080",
		AllowedOrigin: "http://localhost:8081",
	}

	if configData, err := os.ReadFile("config.json"); err == nil {
		if err := json.Unmarshal(configData, &config); err != nil {
			panic(fmt.Errorf("failed to unmarshal config.json: %w", err))
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		config.Port = v
	}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		config.AllowedOrigin = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseURL = v
	}
	if v := os.Getenv("MEALDB_BASE_URL"); v != "" {
		config.MealDBBaseURL = v
	}
	if v := os.Getenv("MEALDB_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("invalid MEALDB_TIMEOUT_SECONDS %q: %w", v, err))
		}
		config.UpstreamTimeout = seconds
	}

	return config
}

func main() {
	config := loadConfig()

	client := mealdb.NewClient(config.MealDBBaseURL, time.Duration(config.UpstreamTimeout)*time.Second)
	mealService := meal.NewService(client)

	var favoriteStore api.FavoriteStore
	if config.DatabaseURL != "" {
		store, err := favorite.NewPostgresStore(config.DatabaseURL)
		if err != nil {
			panic(fmt.Errorf("error creating postgres store: %w", err))
		}
		favoriteStore = store
	} else {
		// Favorites won't survive a restart without a database.
		log.Println("DATABASE_URL not set, using in-memory favorites store")
		favoriteStore = favorite.NewMemoryStore()
	}

	handler := api.NewHandler(mealService, favoriteStore)

	r := gin.Default()

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/categories", handler.GetCategories)
	r.GET("/meals", handler.GetMeals)
	r.GET("/meals/:id", handler.GetMealDetail)
	r.GET("/favorites", handler.GetFavorites)
	r.GET("/favorites/count", handler.GetFavoriteCount)
	r.GET("/favorites/:id", handler.GetFavorite)
	r.PUT("/favorites/:id", handler.AddFavorite)
	r.DELETE("/favorites/:id", handler.RemoveFavorite)
	r.POST("/favorites/:id/toggle", handler.ToggleFavorite)
	r.DELETE("/favorites", handler.ClearFavorites)

	r.Run(":" + config.Port)
}
