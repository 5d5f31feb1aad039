package main

import (
	"Bakify-Web/cmd/config"
	"Bakify-Web/internal/utils"
	"Bakify-Web/internal/utils/logger"
	"log"
)

func main() {
	utils.LoadConfig()

	appLogger, err := logger.New(utils.GetConfig("APP_ENV"))
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer appLogger.Sync()

	app, err := config.NewApp(appLogger)
	if err != nil {
		appLogger.Error("error creating app", "error", err)
		return
	}

	port := utils.GetConfig("APP_PORT")
	appLogger.Info("starting server", "port", port)
	if err := app.Listen(":" + port); err != nil {
		appLogger.Error("server stopped", "error", err)
	}
}
