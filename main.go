package main

import (
	"log"

	"revtrack/config"
	"revtrack/database"
	"revtrack/routers"
	"revtrack/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := routers.NewApp()

	utils.InitializeCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
