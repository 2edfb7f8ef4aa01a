package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boum-cafe/api-gateway/internal/gateway"
	"boum-cafe/config"

	"github.com/rs/cors"
)

func loadConfig() (gateway.Config, string) {
	return gateway.Config{
		MenuSvcURL:      config.GetEnv("MENU_SVC_URL", "http://localhost:8081"),
		BroadcastSvcURL: config.GetEnv("BROADCAST_SVC_URL", "http://localhost:8082"),
		FrontendDir:     config.GetEnv("FRONTEND_DIR", "./frontend"),
	}, config.GetEnv("GATEWAY_ADDR", ":8080")
}

func main() {
	config.LoadDotEnv()
	cfg, addr := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw := gateway.NewGateway(cfg, &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{Addr: addr, Handler: c.Handler(gw.SetupRoutes())}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[GATEWAY] API Gateway starting on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("[GATEWAY] stopped")
}
