package main

import (
	"Recipe-Share/cmd/config"
	migration "Recipe-Share/cmd/database/migrate"
	"Recipe-Share/internal/utils"
	"context"
	"flag"
	"github.com/gofiber/fiber/v2/log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the server configuration file")
	migrate := flag.Bool("migrate", false, "migrate the database before serving")
	flag.Parse()

	conf, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	db, err := config.ConnectDB(conf)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *migrate {
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("error migrating database: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := config.NewStorage(ctx, conf)
	if err != nil {
		log.Fatalf("error opening image storage: %v", err)
	}

	app, accessLog, err := config.NewApp(db, conf, store)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}
	defer accessLog.Close()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("error shutting down: %v", err)
		}
	}()

	if err := app.Listen(":" + conf.AppPort); err != nil {
		log.Errorf("server stopped: %v", err)
	}
}
