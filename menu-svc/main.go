package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boum-cafe/config"
	httpapi "boum-cafe/menu-svc/internal/api/http"
	"boum-cafe/menu-svc/internal/domain"
	"boum-cafe/menu-svc/internal/service"
	"boum-cafe/menu-svc/internal/storage"
	"boum-cafe/session"

	"github.com/redis/go-redis/v9"
)

type settings struct {
	Addr          string
	UploadDir     string
	PublicPrefix  string
	BoardURL      string
	Capacity      int
	BoardCacheTTL time.Duration
	AuthDisabled  bool
}

func loadSettings() settings {
	return settings{
		Addr:          config.GetEnv("MENU_SVC_ADDR", ":8081"),
		UploadDir:     config.GetEnv("UPLOAD_DIR", "./uploads"),
		PublicPrefix:  config.GetEnv("UPLOAD_PUBLIC_PREFIX", "/uploads"),
		BoardURL:      config.GetEnv("BOARD_URL", "http://localhost:8080/board"),
		Capacity:      config.GetEnvInt("CATEGORY_CAPACITY", service.DefaultCategoryCapacity),
		BoardCacheTTL: config.GetEnvDuration("BOARD_CACHE_TTL", 5*time.Minute),
		AuthDisabled:  config.GetEnvBool("AUTH_DISABLED"),
	}
}

func sessionValidator(rdb *redis.Client, disabled bool) session.Validator {
	if disabled {
		log.Println("[menu-svc] WARNING: AUTH_DISABLED set, admin routes are open")
		return nil
	}
	return session.NewRedisStore(rdb)
}

func main() {
	config.LoadDotEnv()
	cfg := loadSettings()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()
	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	writer := config.NewKafkaWriter(config.MenusTopic)
	defer writer.Close()

	hostname, _ := os.Hostname()
	reader := config.NewKafkaReader(config.MenusTopic, "menu-board-"+hostname)
	defer reader.Close()

	bands := service.NewBands(domain.Categories, cfg.Capacity)
	cache := storage.NewRedisBoardCache(rdb, cfg.BoardCacheTTL)
	menuSvc := service.NewMenuService(
		repo,
		bands,
		cache,
		storage.NewKafkaPublisher(writer),
		storage.NewLocalImageStore(cfg.UploadDir, cfg.PublicPrefix),
	)

	hub := service.NewHub()
	consumer := service.NewConsumer(reader, cache, hub)
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(menuSvc, hub, service.BoardQRGenerator{BoardURL: cfg.BoardURL}, sessionValidator(rdb, cfg.AuthDisabled))
	router := httpapi.NewRouter(handler, cfg.UploadDir, cfg.PublicPrefix)

	if err := httpapi.StartServer(ctx, cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
	log.Println("[menu-svc] stopped")
}
