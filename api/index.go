package handler

import (
	"net/http"
	"neodrive/config"
	"neodrive/di"
	"neodrive/shared/logger"
	"sync"
)

var (
	app  http.Handler
	once sync.Once
)

// Handler serves the API as a single serverless function.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		app = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	app.ServeHTTP(w, r)
}
