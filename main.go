package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/EdoFendy/lanadot-restaurant/cmd/config"
	migration "github.com/EdoFendy/lanadot-restaurant/cmd/database/migrate"
	"github.com/EdoFendy/lanadot-restaurant/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}

	if err := migration.Migrate(db); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}

	app, err := config.NewApp(db)
	if err != nil {
		fmt.Fprintln(os.Stderr, "app:", err)
		os.Exit(1)
	}

	go func() {
		if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
			fmt.Fprintln(os.Stderr, "listen:", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	_ = app.Shutdown()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
