package main

import (
	"log"
	"net/http"
	"os"

	_ "usuarios-api/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"usuarios-api/internal/cache"
	"usuarios-api/internal/config"
	"usuarios-api/internal/db"
	"usuarios-api/internal/handler"
	"usuarios-api/internal/logging"
	"usuarios-api/internal/repository"
	"usuarios-api/internal/router"
	"usuarios-api/internal/service"
)

// @title API de Usuários
// @version 1.0
// @description CRUD de usuários com logging estruturado e encaminhamento de logs.
// @host localhost:3000
// @BasePath /
func main() {
	cfg := config.Load()

	appLog, err := logging.New(cfg.LogDir, cfg.Env)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer appLog.Close()

	gormDB, err := db.Connect(cfg.MySQLDSN, cfg.Env)
	if err != nil {
		appLog.Error("database init", "error", err.Error())
		os.Exit(1)
	}

	// Ensure the usuarios table exists before accepting traffic
	if err := db.EnsureSchema(gormDB); err != nil {
		appLog.Error("schema init", "error", err.Error())
		os.Exit(1)
	}
	appLog.Info("database initialized")

	// Cache is optional; a nil client degrades to no caching
	var cacheClient *cache.Client
	if cfg.RedisAddr != "" {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	forwarder := logging.NewForwarder(cfg.LogForwardURL, cfg.LogForwardToken, appLog)
	if !forwarder.Enabled() {
		appLog.Warn("log forwarding not configured, entries stay local")
	}

	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo, cacheClient)

	userHandler := handler.NewUserHandler(userService)
	systemHandler := handler.NewSystemHandler(gormDB, cfg, appLog)

	e := echo.New()
	router.Register(e, cfg, appLog, forwarder, userHandler, systemHandler)

	appLog.Info("server starting",
		"port", cfg.ServerPort,
		"environment", cfg.Env,
		"version", cfg.Version)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		appLog.Error("server start", "error", err.Error())
		os.Exit(1)
	}
}
