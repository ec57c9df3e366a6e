package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"groundops.aero/groundops/config"
	"groundops.aero/groundops/core"
	"groundops.aero/groundops/web/handlers"
	"groundops.aero/groundops/web/middlewares"
)

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	db, err := core.Connect(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	r := gin.Default()
	r.Use(middlewares.CORS(cfg.CORSOrigins))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	handlers.Register(api, db, logger)

	logger.Info("listening", zap.String("addr", cfg.Listen))
	if err := r.Run(cfg.Listen); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
