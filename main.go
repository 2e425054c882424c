package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"sparepos/m/internal/api"
	"sparepos/m/internal/backup"
	"sparepos/m/internal/config"
	"sparepos/m/internal/database"
	"sparepos/m/internal/migrations"
	"sparepos/m/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabasePath)
	defer db.Close()

	migrations.Run(db)
	seed.LoadParts(db, "assets/parts.csv")

	backups, err := backup.NewManager(cfg.DatabasePath, cfg.BackupDir)
	if err != nil {
		log.Fatalf("backup manager: %v", err)
	}

	handler := api.New(db, cfg, backups)

	log.Printf("spare parts POS server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
