package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-app/internal/config"
	"github.com/BruksfildServices01/barbearia-app/internal/media"
	"github.com/BruksfildServices01/barbearia-app/internal/notify"
	"github.com/BruksfildServices01/barbearia-app/internal/routes"
	"github.com/BruksfildServices01/barbearia-app/internal/storage"
	"github.com/BruksfildServices01/barbearia-app/internal/store"
	"github.com/BruksfildServices01/barbearia-app/internal/validators"
)

func main() {

	cfg := config.Load()

	validators.Register()

	db := storage.NewDB(cfg.DataDir)
	kv := storage.NewGormKV(db)

	st, err := store.Load(context.Background(), kv)
	if err != nil {
		// Blob ilegível não vira default silencioso: melhor parar do
		// que mascarar perda de dados.
		log.Fatalf("failed to load local data: %v", err)
	}

	var sender notify.Sender
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("telegram disabled: %v", err)
		} else {
			sender = tg
		}
	}
	dispatcher := notify.NewDispatcher(sender)

	mediaProc, err := media.NewProcessor(cfg.MediaDir())
	if err != nil {
		log.Fatalf("failed to prepare media dir: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg, dispatcher, mediaProc)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
