package main

import (
	"fmt"
	"log"

	"staff-portal/internal/config"
	"staff-portal/internal/server"

	"github.com/spf13/pflag"
)

func main() {
	port := pflag.String("port", "", "listen port (overrides SERVER_PORT)")
	route := pflag.String("route", "", "initial route, e.g. #/profile")
	reseed := pflag.Bool("reseed", false, "drop stored data and write seed data")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}()

	app.Start(*route)
	if *reseed {
		log.Println("reseeding storage")
		app.Store.Reset()
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("starting server on %s", addr)
	if err := app.Engine.Run(addr); err != nil {
		log.Printf("server error: %v", err)
	}
}
