package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"softkom/handlers"
	"softkom/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Load environment variables
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, continuing..")
		}
	}
	log.Println("environment:", os.Getenv("APP_ENV"))

	pgDSN := os.Getenv("DATABASE_URL")

	// Initialize the database connection pool
	dbPool, pgErr := utils.OpenDB(pgDSN)
	if pgErr != nil {
		log.Fatalf("Failed to connect to database: %v", pgErr)
	}
	defer dbPool.Close()

	redisDSN := os.Getenv("REDIS_URL")
	redisPool := utils.OpenRedisPool(redisDSN)
	defer redisPool.Close()

	translator := utils.NewTranslator()

	r := chi.NewRouter()

	// Allow a comma-separated list of origins
	var origins []string
	for _, p := range strings.Split(envOr("CORS_ORIGIN", "http://localhost:8080"), ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// File server for static files
	fileServer := http.FileServer(http.Dir("./ui/static/"))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Pages
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		handlers.IndexHandler(w, req, dbPool, redisPool)
	})
	r.Get("/about", func(w http.ResponseWriter, req *http.Request) {
		handlers.AboutHandler(w, req, dbPool, redisPool)
	})
	r.Get("/contact", func(w http.ResponseWriter, req *http.Request) {
		handlers.ContactHandler(w, req, dbPool, redisPool)
	})

	// Auth
	r.Get("/login", func(w http.ResponseWriter, req *http.Request) {
		handlers.LoginPageHandler(w, req, redisPool)
	})
	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		handlers.LoginHandler(w, req, dbPool, redisPool)
	})
	r.Get("/sign-up", func(w http.ResponseWriter, req *http.Request) {
		handlers.SignUpPageHandler(w, req, redisPool)
	})
	r.Post("/sign-up", func(w http.ResponseWriter, req *http.Request) {
		handlers.SignUpHandler(w, req, dbPool)
	})
	r.Get("/logout", func(w http.ResponseWriter, req *http.Request) {
		handlers.LogOutHandler(w, req, redisPool)
	})

	// Task API
	r.Get("/tasks", func(w http.ResponseWriter, req *http.Request) {
		handlers.ListTasksHandler(w, req, dbPool, redisPool)
	})
	r.Post("/tasks", func(w http.ResponseWriter, req *http.Request) {
		handlers.CreateTaskHandler(w, req, dbPool, redisPool)
	})
	r.Put("/tasks/{id}", func(w http.ResponseWriter, req *http.Request) {
		handlers.UpdateTaskHandler(w, req, dbPool, redisPool)
	})
	r.Delete("/tasks/{id}", func(w http.ResponseWriter, req *http.Request) {
		handlers.DeleteTaskHandler(w, req, dbPool, redisPool)
	})

	// Translation proxy
	r.Post("/translate", func(w http.ResponseWriter, req *http.Request) {
		handlers.TranslateHandler(w, req, redisPool, translator)
	})

	addr := ":" + envOr("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Println("Starting server on", addr)
	log.Fatal(srv.ListenAndServe())
}
