package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"

	"github.com/Dave-funds/betahome/config"
	"github.com/Dave-funds/betahome/handlers"
	"github.com/Dave-funds/betahome/repository"
	"github.com/Dave-funds/betahome/routes"
	"github.com/Dave-funds/betahome/uploader"
	"github.com/Dave-funds/betahome/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, nil)))

	config.ConnectDB()

	up, err := uploader.NewCloudinaryUploader(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		slog.Error("failed to configure media uploader", "error", err)
		os.Exit(1)
	}

	cache := utils.NewCache()
	repo := repository.NewMongoPropertyRepository(config.GetCollection(config.Getenv("MONGODB_COLLECTION_PROPERTIES", "properties")))

	controllers := routes.Controllers{
		Property: handlers.NewPropertyController(repo, up, cache),
		User:     handlers.NewUserController(config.GetCollection(config.Getenv("MONGODB_COLLECTION_USER", "user"))),
		Saved:    handlers.NewSavedController(config.GetCollection(config.Getenv("MONGODB_COLLECTION_SAVED", "saved")), repo),
		Enquiry:  handlers.NewEnquiryController(config.GetCollection(config.Getenv("MONGODB_COLLECTION_ENQUIRIES", "enquiries")), repo),
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, controllers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	e.Logger.Fatal(e.Start(":" + port))
}
