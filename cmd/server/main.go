package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteer-hub-api/internal/config"
	"github.com/volunteerhub/volunteer-hub-api/internal/server"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	log.Println("Server starting on :8080")
	if err := server.Run(cfg, ":8080"); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
