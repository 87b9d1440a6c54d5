package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"meeting-itinerary-service/internal/adapters/cache"
	"meeting-itinerary-service/internal/adapters/repositories"
	"meeting-itinerary-service/internal/api"
	"meeting-itinerary-service/internal/config"
	"meeting-itinerary-service/internal/platform/db"
	"meeting-itinerary-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (postgres, redis) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	redisAddr := config.Get("REDIS_ADDR", "")
	cacheTTL, err := time.ParseDuration(config.Get("PLAN_CACHE_TTL", "1h"))
	if err != nil {
		log.Fatalf("invalid PLAN_CACHE_TTL: %v", err)
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Schema init on startup keeps local runs zero-step; seeding stays in
	// cmd/dbtool.
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewPostgresMeetingRepository(conn)

	// Plan caching is optional: without REDIS_ADDR every request recomputes,
	// which is fine for small days.
	var planCache ports.PlanCache
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		planCache = cache.NewRedisPlanCache(client, cacheTTL)
		log.Printf("Plan cache enabled addr=%s ttl=%s", redisAddr, cacheTTL)
	}

	router := api.NewRouter(repo, planCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
