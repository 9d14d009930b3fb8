package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"pathshala_backend/internals/configs"
	database "pathshala_backend/internals/databases"
	helper "pathshala_backend/internals/helpers"
	middlewares "pathshala_backend/internals/middlewares"
	routes "pathshala_backend/internals/route"
	seeds "pathshala_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	// "go run . seed" bootstraps the admin accounts and exits.
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		db := database.ConnectDB()
		if err := seeds.Run(db); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
		log.Println("🎉 Seeding completed")
		return
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          apiErrorHandler,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	db := database.ConnectDB()
	database.TunePool(db)

	routes.SetupRoutes(app, db)

	// 404 fallback, same envelope as every other error
	app.Use(func(c *fiber.Ctx) error {
		return helper.Error(c, fiber.StatusNotFound, "Route "+c.OriginalURL()+" not found")
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "5000")

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("👋 Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// apiErrorHandler normalizes every error escaping a handler into the
// standard JSON envelope. Non-fiber errors become 500; their message is
// hidden outside development.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] unhandled: %v", err)
	msg := "Internal Server Error"
	if configs.AppEnv == "development" {
		msg = err.Error()
	}
	return helper.Error(c, fiber.StatusInternalServerError, msg)
}
