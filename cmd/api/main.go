package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"entaltek-sabueso/internal/platform/logger"
	"entaltek-sabueso/internal/router"
)

func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	appLog := logger.NewFromEnv()

	r := router.NewRouter(router.Options{Logger: appLog})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("starting server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
