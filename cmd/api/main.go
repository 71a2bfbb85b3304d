package main

import (
	"log"

	"resume-coach/internal/llm/groq"
	"resume-coach/internal/shared/config"
	"resume-coach/internal/shared/server"
)

func main() {
	cfg := config.Load()

	client, err := groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqTimeout)
	if err != nil {
		log.Fatalf("groq client: %v", err)
	}

	r, err := server.NewRouter(cfg, client)
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
