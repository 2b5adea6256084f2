package main

import (
	"context"
	"log"

	"grow-coach-be/internal/bootstrap"
	"grow-coach-be/internal/config"
	"grow-coach-be/internal/server"
	"grow-coach-be/internal/tracer"
	"grow-coach-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
