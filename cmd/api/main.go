package main

import (
	"log"
	"net/http"
	"time"

	"github.com/aupetservices/petcare-scheduler/internal/cache"
	"github.com/aupetservices/petcare-scheduler/internal/config"
	dbpkg "github.com/aupetservices/petcare-scheduler/internal/db"
	"github.com/aupetservices/petcare-scheduler/internal/routes"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// cache de contadores é opcional: sem Redis, consulta direta
	var counters *cache.CounterCache
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPass)
		if err != nil {
			log.Printf("redis unavailable, running without counter cache: %v", err)
		} else {
			counters = cache.NewCounterCache(client, 30*time.Second)
		}
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, counters)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
