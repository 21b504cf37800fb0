package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nilsnoeller-tech/trading-sub000/internal/config"
	httpdelivery "github.com/nilsnoeller-tech/trading-sub000/internal/delivery/http"
	"github.com/nilsnoeller-tech/trading-sub000/internal/delivery/websocket"
	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
	"github.com/nilsnoeller-tech/trading-sub000/internal/infrastructure/db"
	"github.com/nilsnoeller-tech/trading-sub000/internal/infrastructure/fcm"
	"github.com/nilsnoeller-tech/trading-sub000/internal/infrastructure/marketdata"
	"github.com/nilsnoeller-tech/trading-sub000/internal/logging"
	"github.com/nilsnoeller-tech/trading-sub000/internal/repository"
	"github.com/nilsnoeller-tech/trading-sub000/internal/usecase"
)

func main() {
	cfg := config.Load()
	log := logging.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Persistence. Without DATABASE_URL everything runs in memory, which is
	// enough for local use.
	var (
		tradeRepo     domain.TradeEntryRepository
		watchlistRepo domain.WatchlistRepository
		tokenRepo     domain.DeviceTokenRepository
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, db.DefaultPoolConfig())
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to postgres")
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("running migrations")
		}
		tradeRepo = repository.NewPostgresTradeRepository(pool)
		watchlistRepo = repository.NewPostgresWatchlistRepository(pool)
		tokenRepo = repository.NewPostgresTokenRepository(pool)
		log.Info().Msg("postgres storage ready")
	} else {
		tradeRepo = repository.NewInMemoryTradeRepository()
		watchlistRepo = repository.NewInMemoryWatchlistRepository()
		tokenRepo = repository.NewInMemoryTokenRepository()
		log.Warn().Msg("DATABASE_URL not set, using in-memory storage")
	}

	// Cooldown state lives in Redis so alerts stay suppressed across
	// restarts; fall back to memory when Redis is unreachable.
	var cooldown domain.CooldownStore
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, using in-memory cooldowns")
		cooldown = repository.NewInMemoryCooldownStore(time.Now)
	} else {
		cooldown = repository.NewRedisCooldownStore(redisClient)
		defer redisClient.Close()
	}

	fcmClient, err := fcm.NewClient(ctx, cfg.FCMCredentialsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing FCM")
	}
	if !fcmClient.IsEnabled() {
		log.Warn().Msg("FCM credentials not set, push notifications disabled")
	}

	source := marketdata.NewClient(cfg.MarketDataBaseURL)
	resultRepo := repository.NewInMemoryScanResultRepository()
	scanner := usecase.NewWatchlistScanner(source, log)
	notifier := usecase.NewNotifier(fcmClient, tokenRepo, cooldown,
		cfg.SwingThreshold, cfg.IntradayThreshold, cfg.NotifyCooldown, log)
	scheduler := usecase.NewScheduler(scanner, watchlistRepo, resultRepo, notifier, cfg.ScanInterval, log)

	go scheduler.Run(ctx)

	scanHandler := httpdelivery.NewScanHandler(scanner, resultRepo)
	autoFillHandler := httpdelivery.NewAutoFillHandler(scanner)
	tradeHandler := httpdelivery.NewTradeHandler(tradeRepo)
	watchlistHandler := httpdelivery.NewWatchlistHandler(watchlistRepo)
	tokenHandler := httpdelivery.NewTokenHandler(tokenRepo)
	testHandler := httpdelivery.NewTestHandler(fcmClient, tokenRepo)
	wsHandler := websocket.NewHandler(resultRepo, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.Handle)
	mux.HandleFunc("/api/scan", scanHandler.ScanNow)
	mux.HandleFunc("/api/scan/results", scanHandler.GetResults)
	mux.HandleFunc("/api/autofill", autoFillHandler.AutoFill)
	mux.HandleFunc("/api/watchlist", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			watchlistHandler.Add(w, r)
			return
		}
		watchlistHandler.List(w, r)
	})
	mux.HandleFunc("/api/watchlist/remove", watchlistHandler.Remove)
	mux.HandleFunc("/api/trades", tradeHandler.CreateEntry)
	mux.HandleFunc("/api/trades/open", tradeHandler.GetOpenEntries)
	mux.HandleFunc("/api/trades/history", tradeHandler.GetHistory)
	mux.HandleFunc("/api/trades/close", tradeHandler.CloseEntry)
	mux.HandleFunc("/api/trades/delete", tradeHandler.DeleteEntry)
	mux.HandleFunc("/api/tokens/register", tokenHandler.Register)
	mux.HandleFunc("/api/tokens/unregister", tokenHandler.Unregister)
	mux.HandleFunc("/api/test-notification", testHandler.SendTestNotification)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
