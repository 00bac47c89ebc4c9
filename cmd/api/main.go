package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/config"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/logging"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/middleware"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/order"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/ordering"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/recognition"
	"github.com/leonyu5566/ordering-helper-backend-sub002/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; fail loudly on stderr.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// ───────────────────────── LOGGING ─────────────────────────
	log := logging.Init("ordering-helper", cfg.LogFile)

	// ───────────────────────── STORAGE (optional) ─────────────────────────
	var archiver ordering.Archiver
	if cfg.ArchivalEnabled() {
		r2, err := storage.NewR2Client(context.Background(), cfg)
		if err != nil {
			log.Error("R2 init failed", "err", err)
			os.Exit(1)
		}
		archiver = r2
		log.Info("photo archival enabled", "bucket", cfg.R2Bucket)
	} else {
		log.Info("photo archival disabled (R2 env vars not set)")
	}

	// ───────────────────────── ORDERING CORE ─────────────────────────
	recognizer := recognition.NewClient(cfg.RecognitionURL, logging.New("recognition"))
	orders := order.NewClient(cfg.OrderURL)

	app := ordering.NewApp(
		recognizer,
		orders,
		archiver,
		cfg.DefaultLang,
		logging.New("ordering"),
	)
	handler := ordering.NewHandler(app)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Info("API running", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
