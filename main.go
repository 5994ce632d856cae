package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"student-backend/config"
	"student-backend/controller"
	"student-backend/logger"
	"student-backend/middleware"
	"student-backend/store"
	"student-backend/store/memstore"
	"student-backend/store/mongostore"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	var st store.Store
	switch cfg.Store {
	case "memory":
		st = memstore.New()
		log.Warn().Msg("using in-memory store, records are lost on restart")
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		ms, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer ms.Close(context.Background())
		st = ms
		log.Info().Str("db", cfg.DBName).Msg("connected to mongodb")
	}

	router := chi.NewRouter()
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(log))

	controller.NewUserController(st, log).Register(router)
	controller.NewStudentController(st, log).Register(router)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server listening")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
