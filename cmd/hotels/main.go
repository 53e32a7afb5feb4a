package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripmesh/tripmesh/a2a"
	"github.com/tripmesh/tripmesh/config"
	"github.com/tripmesh/tripmesh/service/hotels"
	"github.com/tripmesh/tripmesh/service/research"
)

func main() {
	env := config.LoadEnv(config.PortHotels)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	clt := env.NewInstructor()
	if clt == nil {
		log.Println("no model key configured, serving sample hotel data")
	}
	service := hotels.New(clt, env.Model(), research.New(env.SearxngURL))
	server := a2a.NewServer(hotels.Card("http://localhost"+env.Addr), hotels.NewExecutor(service))

	srv := &http.Server{
		Addr:              env.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("hotels agent listening on %s", env.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
	log.Println("stopped")
}
