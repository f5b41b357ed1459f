package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/anonboard-dev/anonboard/internal/config"
	"github.com/anonboard-dev/anonboard/internal/handler"
	"github.com/anonboard-dev/anonboard/internal/jwt"
	"github.com/anonboard-dev/anonboard/internal/logger"
	"github.com/anonboard-dev/anonboard/internal/router"
	"github.com/anonboard-dev/anonboard/internal/service"
	"github.com/anonboard-dev/anonboard/internal/storage/pg"
)

func main() {
	// .env is optional; environment always wins over config files
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to init storage", "error", err)
		return
	}
	defer storage.Cleanup()

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	thread := service.NewThread(storage)
	reply := service.NewReply(storage)

	h := handler.New(auth, thread, reply, storage, cfg)
	r := router.New(h, jwtService, cfg)

	addr := fmt.Sprintf(":%d", cfg.Public.Port)
	logger.Log.Info("server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
