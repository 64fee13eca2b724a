package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/phuslu/log"

	"tradewatch/config"
	"tradewatch/db"
	"tradewatch/engine"
	"tradewatch/ingest"
	"tradewatch/middleware"
	"tradewatch/routes"
	"tradewatch/store"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	log.DefaultLogger.Level = log.ParseLevel(cfg.LogLevel)

	ctx := context.Background()
	client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer client.Disconnect(ctx)

	mongoStore := store.NewMongoStore(database)
	queryEngine := engine.New(mongoStore)

	var scheduler *ingest.Scheduler
	if cfg.FeedURL != "" {
		syncer := ingest.NewSyncer(ingest.NewClient(cfg.FeedURL, cfg.FeedRPS), mongoStore)
		scheduler = ingest.NewScheduler(cfg.SyncInterval, syncer.Run)
		scheduler.Start()
		defer scheduler.Stop()
	} else {
		log.Warn().Msg("FEED_URL not set, disclosure sync disabled")
	}

	r := gin.Default()
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(cfg.JWTSecret))
	routes.TradeRoutes(api, queryEngine)
	routes.SearchRoutes(api, queryEngine)
	routes.TraderRoutes(api, queryEngine)
	routes.StockRoutes(api, queryEngine)
	if scheduler != nil {
		routes.SyncRoutes(api, scheduler)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
