package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopconsole/internal/backend"
	"shopconsole/internal/config"
	httpx "shopconsole/internal/http"
	journalsvc "shopconsole/internal/services/journal"
	"shopconsole/internal/session"
	"shopconsole/internal/store/postgres"
	"shopconsole/internal/store/repositories"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Backend
	api := backend.New(cfg.Backend.BaseURL, cfg.Backend.TimeoutSec)
	if err := api.WaitReady(ctx, cfg.Backend.ReadyMaxWait); err != nil {
		log.Fatal().Err(err).Str("base_url", cfg.Backend.BaseURL).Msg("backend unavailable")
	}

	// Session state: redis when configured, memory otherwise
	var store session.Store = session.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rdb, err := session.OpenRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal().Err(err).Msg("redis unavailable")
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb, cfg.Listing.SessionTTL)
	}

	// Action journal: postgres when configured
	var journalRepo repositories.JournalRepository = repositories.NoopJournal{}
	if cfg.DB.DSN != "" {
		pool, err := postgres.Open(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal().Err(err).Msg("journal database unavailable")
		}
		defer pool.Close()
		journalRepo = postgres.NewJournalRepository(pool)
	}

	sessions := httpx.NewSessionManager(cfg, api, store)

	// Start session janitor
	janitor := session.NewJanitor(sessions, time.Minute)
	go janitor.Run(ctx)

	// Router
	r := httpx.NewRouter(httpx.RouterDependencies{
		Config:   cfg,
		Backend:  api,
		Sessions: sessions,
		Journal:  journalsvc.NewService(journalRepo),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.Backend.TimeoutSec+15) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("env", cfg.App.Env).Msgf("shop console listening on :%s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	log.Info().Msg("server stopped")
}
