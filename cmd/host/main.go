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
	"github.com/tripmesh/tripmesh/service/host"
)

func main() {
	env := config.LoadEnv(config.PortHost)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	remotes, err := config.LoadRemotes(env.RemotesFile)
	if err != nil {
		log.Fatalf("remotes: %v", err)
	}

	clt := env.NewInstructor()
	if clt == nil {
		log.Println("no model key configured, parsing trip requests heuristically")
	}
	coordinator := host.NewFromURLs(remotes, host.NewParser(clt, env.Model()))

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	coordinator.InitRemotes(initCtx)
	cancelInit()

	server := a2a.NewServer(host.Card("http://localhost"+env.Addr), host.NewExecutor(coordinator))

	srv := &http.Server{
		Addr:              env.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      300 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("host agent listening on %s", env.Addr)
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
