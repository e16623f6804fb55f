package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"abhm_backend/internals/configs"
	database "abhm_backend/internals/databases"
	"abhm_backend/internals/features/auth"
	"abhm_backend/internals/middlewares"
	"abhm_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		AppName:      "ABHM MP Membership API",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    10 * 1024 * 1024,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // card PDF rendering can be slow
		IdleTimeout:  75 * time.Second,
	})

	app.Use(compress.New())
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.MigrateDB()
	database.WarmUpQueries()

	if err := auth.EnsureDefaultAdmin(database.DB); err != nil {
		log.Println("❌ Failed to seed default admin:", err)
	}

	app.Static("/uploads", "./uploads")
	route.SetupRoutes(app, database.DB)

	port := configs.GetEnv("PORT", "5000")

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ Server stopped: %v", err)
		}
	}()
	log.Printf("🚀 Server listening on port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🔌 Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Println("❌ Shutdown error:", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server stopped cleanly.")
}
