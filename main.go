package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjunvx/skillfolio/api"
	"github.com/arjunvx/skillfolio/config"
	db "github.com/arjunvx/skillfolio/db/sqlc"
	"github.com/arjunvx/skillfolio/resume"
)

func main() {
	// Step 1: Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("❌ could not load configuration: %v", err)
	}
	log.Println("✅ Configuration loaded successfully.")

	// Step 2: Establish database connection pool
	connPool, err := pgxpool.New(context.Background(), cfg.DBSource)
	if err != nil {
		log.Fatalf("❌ could not connect to the database: %v", err)
	}
	defer connPool.Close()
	log.Println("✅ Database connection pool established.")

	// Step 3: Initialize the database store
	store := db.NewStore(connPool)

	// Step 4: Initialize the resume parsing service.
	// The model endpoint is slow on large resumes, hence the generous timeout.
	groqClient := resume.NewGroqClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel, &http.Client{
		Timeout: 90 * time.Second,
	})
	parser := resume.NewLLMParser(groqClient)
	log.Println("✅ Resume parser (Groq) initialized.")

	// Step 5: Create a new API server instance
	server, err := api.NewServer(cfg, store, parser)
	if err != nil {
		log.Fatalf("❌ could not create the server: %v", err)
	}
	log.Println("✅ API server created.")

	// Step 6: Start the HTTP server
	log.Printf("🚀 Starting server on %s", cfg.ServerAddress)
	if err := server.Start(cfg.ServerAddress); err != nil {
		log.Fatalf("❌ failed to start server: %v", err)
	}
}
