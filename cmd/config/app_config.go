package config

import (
	"Bakify-Web/internal/api/handlers"
	"Bakify-Web/internal/api/routes"
	"Bakify-Web/internal/middleware"
	"Bakify-Web/internal/utils"
	applog "Bakify-Web/internal/utils/logger"
	"Bakify-Web/pkg/catalog"
	"Bakify-Web/pkg/drive"
	"Bakify-Web/pkg/jwt"
	"Bakify-Web/pkg/session"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func NewApp(appLogger *applog.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	driveRepository := drive.NewDriveRepository()

	// Service
	jwtService := jwt.NewJWTService()
	backupService := drive.NewBackupService(
		driveRepository,
		utils.GetConfig("BACKUP_FOLDER_NAME"),
		utils.GetConfig("BACKUP_FILE_NAME"),
		appLogger,
	)
	catalogService := catalog.NewCatalogService(backupService, appLogger)
	sessionService := session.NewSessionService()

	// Handler
	authHandler := handlers.NewAuthHandler(sessionService, catalogService, jwtService, validator)
	catalogHandler := handlers.NewCatalogHandler(sessionService, catalogService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		AuthHandler:    authHandler,
		CatalogHandler: catalogHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
