package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"homeswap/internal/database"
	"homeswap/internal/domain"
	"homeswap/internal/middleware"
	"homeswap/internal/modules/auth"
	"homeswap/internal/modules/exchange"
	"homeswap/internal/modules/feedback"
	"homeswap/internal/modules/inbox"
	"homeswap/internal/modules/notification"
	"homeswap/internal/modules/property"
	"homeswap/internal/modules/upload"
	"homeswap/internal/modules/verification"
	jwtsvc "homeswap/internal/pkg/jwt"
	"homeswap/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "homeswap.db"
		log.Println("DATABASE_URL is empty, falling back to local SQLite file", dsn)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Property{},
		&domain.UserVerification{},
		&domain.Feedback{},
		&domain.InboxItem{},
		&domain.ExchangeRequest{},
		&upload.Upload{},
		&notification.Notification{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	inboxRepo := repository.NewInboxRepository(db)
	exchangeRepo := repository.NewExchangeRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	notifService := notification.NewService(notification.NewRepository(db))
	notifHandler := notification.NewHandler(notifService)

	hub := inbox.NewHub()
	inboxService := inbox.NewService(inboxRepo, notifService, hub)
	inboxHandler := inbox.NewHandler(inboxService, hub)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	propertyService := property.NewService(propertyRepo, userRepo, inboxService)
	propertyHandler := property.NewHandler(propertyService)

	verificationService := verification.NewService(verificationRepo, userRepo, inboxService)
	verificationHandler := verification.NewHandler(verificationService)

	feedbackService := feedback.NewService(feedbackRepo, userRepo, inboxService)
	feedbackHandler := feedback.NewHandler(feedbackService)

	exchangeService := exchange.NewService(exchangeRepo, propertyRepo, notifService)
	exchangeHandler := exchange.NewHandler(exchangeService)

	uploadDir := os.Getenv("UPLOAD_DIR")
	uploadService := upload.NewService(upload.NewRepository(db), uploadDir, "")
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	if uploadDir == "" {
		uploadDir = upload.UploadsBaseDir
	}
	r.Static(upload.StaticURLBase, uploadDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		propertyHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterRoutes(protected)
			propertyHandler.RegisterRoutes(protected)
			verificationHandler.RegisterRoutes(protected)
			feedbackHandler.RegisterRoutes(protected)
			exchangeHandler.RegisterRoutes(protected)
			uploadHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)
		}

		// moderation queue, admins only
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			inboxHandler.RegisterRoutes(admin)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
