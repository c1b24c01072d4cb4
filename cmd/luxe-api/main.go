package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nuelxcodev/luxe/cmd/luxe-api/app"
	"github.com/nuelxcodev/luxe/configs"
)

func main() {
	_ = godotenv.Load() // optional .env for local runs

	env := os.Getenv("APP_ENV") // dev | staging | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	a, cleanup, err := app.InitWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	log.Printf("luxe-api (%s) listening on %s", env, cfg.App.HTTPAddr)
	if err := a.Router.Run(cfg.App.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
