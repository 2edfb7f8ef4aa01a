package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "boum-cafe/broadcast-svc/internal/api/http"
	"boum-cafe/broadcast-svc/internal/domain"
	"boum-cafe/broadcast-svc/internal/playback"
	"boum-cafe/broadcast-svc/internal/service"
	"boum-cafe/broadcast-svc/internal/storage"
	"boum-cafe/config"
	"boum-cafe/session"
	"boum-cafe/speech"

	"github.com/redis/go-redis/v9"
)

type settings struct {
	Addr         string
	AssetDir     string
	PlayerCmd    string
	MusicCmd     string
	TimeZone     string
	GeminiKey    string
	GeminiURL    string
	GeminiModel  string
	GeminiVoice  string
	AuthDisabled bool
}

func loadSettings() settings {
	return settings{
		Addr:         config.GetEnv("BROADCAST_SVC_ADDR", ":8082"),
		AssetDir:     config.GetEnv("AUDIO_ASSET_DIR", "./audio"),
		PlayerCmd:    config.GetEnv("AUDIO_PLAYER", playback.DefaultCommand),
		MusicCmd:     config.GetEnv("MUSIC_PLAYER", playback.DefaultMusicCommand),
		TimeZone:     config.GetEnv("BROADCAST_TZ", "Asia/Seoul"),
		GeminiKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiURL:    config.GetEnv("GEMINI_API_URL", speech.DefaultAPIURL),
		GeminiModel:  config.GetEnv("GEMINI_MODEL", speech.DefaultModel),
		GeminiVoice:  config.GetEnv("GEMINI_VOICE", speech.DefaultVoice),
		AuthDisabled: config.GetEnvBool("AUTH_DISABLED"),
	}
}

func sessionValidator(rdb *redis.Client, disabled bool) session.Validator {
	if disabled {
		log.Println("[broadcast-svc] WARNING: AUTH_DISABLED set, console routes are open")
		return nil
	}
	return session.NewRedisStore(rdb)
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[broadcast-svc] WARNING: unknown time zone %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}

func main() {
	config.LoadDotEnv()
	cfg := loadSettings()
	if cfg.GeminiKey == "" {
		log.Println("[broadcast-svc] WARNING: GEMINI_API_KEY not set, spoken broadcasts will fail")
	}

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

	writer := config.NewKafkaWriter(config.SchedulesTopic)
	defer writer.Close()

	hostname, _ := os.Hostname()
	reader := config.NewKafkaReader(config.SchedulesTopic, "broadcast-trigger-"+hostname)
	defer reader.Close()

	music := playback.NewExecMusic(cfg.MusicCmd)
	defer music.Stop()

	broadcaster := service.NewBroadcaster(
		speech.NewClient(cfg.GeminiKey, cfg.GeminiURL, cfg.GeminiModel, cfg.GeminiVoice),
		playback.NewExecPlayer(cfg.PlayerCmd),
		music,
		service.NewLease(),
		cfg.AssetDir,
	)

	guard := storage.NewRedisFiredGuard(rdb, 2*time.Minute)
	trigger := service.NewTrigger(guard, loadLocation(cfg.TimeZone), func(ctx context.Context, s domain.Schedule) {
		go func() {
			if err := broadcaster.Run(ctx, s.Announcement()); err != nil {
				log.Printf("[broadcast-svc] scheduled broadcast %s failed: %v", s.ID, err)
			}
		}()
	})

	schedules := service.NewScheduleService(repo, trigger, storage.NewKafkaPublisher(writer))
	if err := schedules.Reload(ctx); err != nil {
		log.Fatal("Failed to load schedules:", err)
	}

	go service.NewConsumer(reader, schedules).Start(ctx)
	go trigger.Run(ctx)

	handler := httpapi.NewHandler(
		broadcaster,
		schedules,
		service.NewMusicService(repo, music),
		sessionValidator(rdb, cfg.AuthDisabled),
	)

	if err := httpapi.StartServer(ctx, cfg.Addr, httpapi.NewRouter(handler)); err != nil {
		log.Fatal(err)
	}
	log.Println("[broadcast-svc] stopped")
}
