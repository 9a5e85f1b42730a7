package main

import (
	"log"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/app"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
