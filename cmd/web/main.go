package main

import (
	"github.com/joho/godotenv"

	"github.com/parths301/aib-hub/internal/app"
)

func main() {
	// Missing .env is fine, config falls back to config.yaml and the
	// process environment.
	_ = godotenv.Load()

	app.Run()
}
