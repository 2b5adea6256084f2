package main

import (
	"context"
	"flag"
	"log"
	"os"

	"grow-coach-be/internal/bootstrap"
	"grow-coach-be/internal/config"
	"grow-coach-be/pkg/database"

	"github.com/fatih/color"
)

// One-shot batch job: walks the knowledge directory, chunks and embeds every
// document, and upserts the records. Safe to re-run; matching titles are
// replaced in place.
func main() {
	cfg := config.Load()

	rootDir := flag.String("root", cfg.Knowledge.RootDir, "knowledge directory to ingest")
	flag.Parse()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	color.Cyan("Ingesting knowledge base from %s ...", *rootDir)

	summary, err := container.KnowledgeIngestService.Ingest(context.Background(), *rootDir)
	if err != nil {
		color.Red("Ingestion failed: %v", err)
		os.Exit(1)
	}

	failed := summary.TotalChunks - summary.SucceededChunks
	color.Green("Done: %d/%d chunks ingested", summary.SucceededChunks, summary.TotalChunks)
	if failed > 0 {
		color.Yellow("%d chunks failed, see logs", failed)
		os.Exit(1)
	}
}
