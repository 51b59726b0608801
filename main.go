package main

import (
	"fmt"
	"log"

	"github.com/LXHNeko/space-takeout/configs"
	"github.com/LXHNeko/space-takeout/middlewares"
	"github.com/LXHNeko/space-takeout/pkg/payment"
	"github.com/LXHNeko/space-takeout/routes"
	"github.com/LXHNeko/space-takeout/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB + redis
	configs.ConnectionDB(cfg.DBSource)
	configs.ConnectRedis(cfg.RedisAddr)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedDishes(); err != nil {
		log.Fatalf("seed dishes failed: %v", err)
	}

	// merchant notification hub
	hub := ws.NewHub()
	go hub.Run()

	// TODO: swap the sandbox for the real gateway client once credentials exist
	gateway := payment.NewSandbox()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, cfg, gateway, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
