package main

import (
	"neodrive/config"
	"neodrive/di"
	"neodrive/shared/logger"

	_ "neodrive/docs"
)

// @title Neo Drive API
// @version 1.0
// @description Car listing and booking service backed by MongoDB.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
