package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"speakup/config"
	paymentControllers "speakup/controllers/payment"
	"speakup/database"
	"speakup/processor"
	authRoutes "speakup/routers/authRoutes"
	cartRoutes "speakup/routers/cartRoutes"
	classRoutes "speakup/routers/classRoutes"
	paymentRoutes "speakup/routers/paymentRoutes"
	userRoutes "speakup/routers/userRoutes"
	"speakup/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	defer database.CloseDb()

	paymentControllers.Intents = processor.NewClient()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("summer server is speaking")
	})

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	classRoutes.SetupClassRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	scheduler := utils.StartReconcileScheduler()

	// Shut down cleanly on SIGINT/SIGTERM so the DB pool is released
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		scheduler.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal(err)
	}
}
