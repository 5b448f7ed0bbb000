package main

import (
	"os"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/routers"
	"lms/storage"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	if err := storage.Init(config.AppConfig); err != nil {
		log.Fatal().Err(err).Str("driver", config.AppConfig.StorageDriver).Msg("failed to initialise storage")
	}
	utils.Mailer = utils.NewNotifier(config.AppConfig)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		Output: os.Stdout,
	}))

	// Uploaded files on local disk
	if config.AppConfig.StorageDriver == "local" {
		app.Static("/media", config.AppConfig.MediaRoot)
	}

	if err := routers.Setup(app); err != nil {
		log.Fatal().Err(err).Msg("invalid route table")
	}

	if _, err := utils.InitializeReleaseScheduler(config.AppConfig.ReleaseNotifyCron, database.Database.Db, utils.Mailer); err != nil {
		log.Fatal().Err(err).Str("schedule", config.AppConfig.ReleaseNotifyCron).Msg("failed to start release scheduler")
	}

	log.Info().Str("port", config.AppConfig.Port).Msg("Server is running")
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
