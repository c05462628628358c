package config

import (
	"os"
	"time"

	"github.com/EdoFendy/lanadot-restaurant/internal/api/handlers"
	"github.com/EdoFendy/lanadot-restaurant/internal/api/routes"
	"github.com/EdoFendy/lanadot-restaurant/internal/middleware"
	"github.com/EdoFendy/lanadot-restaurant/internal/utils"
	"github.com/EdoFendy/lanadot-restaurant/internal/utils/storage"
	"github.com/EdoFendy/lanadot-restaurant/pkg/auth"
	"github.com/EdoFendy/lanadot-restaurant/pkg/menu"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Europe/Rome",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	var store storage.Storage
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		store = storage.NewAwsS3()
	} else {
		store = storage.NewLocalStorage(utils.GetConfig("PUBLIC_DIR"))
	}

	// Repository
	menuRepository := menu.NewMenuRepository(db)

	// Service
	sessionService := auth.NewSessionService()
	menuService := menu.NewMenuService(menuRepository, store, utils.GetConfig("UPLOADS_DIR"))

	// Handler
	authHandler := handlers.NewAuthHandler(sessionService, utils.GetConfig("IsProd") == "true")
	menuHandler := handlers.NewMenuHandler(menuService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		AuthHandler:    authHandler,
		MenuHandler:    menuHandler,
		Middleware:     middlewares,
		SessionService: sessionService,
		PublicDir:      utils.GetConfig("PUBLIC_DIR"),
		UploadsDir:     utils.GetConfig("UPLOADS_DIR"),
	}
	routesConfig.Setup()
	return app, nil
}
