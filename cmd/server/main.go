package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/example/jhelumkesar/internal/config"
	"github.com/example/jhelumkesar/internal/otp"
	"github.com/example/jhelumkesar/internal/routes"
	"github.com/example/jhelumkesar/internal/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		logrus.Fatalf("failed to open data store: %v", err)
	}

	var codes otp.Store
	if cfg.RedisURL != "" {
		redisStore, err := otp.NewRedisStore(context.Background(), cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		codes = redisStore
		logrus.Info("OTP store: redis")
	} else {
		codes = otp.NewMemoryStore()
		logrus.Info("OTP store: in-memory (single instance only)")
	}

	app := fiber.New(fiber.Config{
		AppName: "Jhelum Kesar Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, st, cfg, codes)

	logrus.Infof("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("fiber.Listen error: %v", err)
	}
}
