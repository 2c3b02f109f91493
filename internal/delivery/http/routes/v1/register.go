package v1

import (
	"log"

	"internhub/internal/ai"
	"internhub/internal/config"
	"internhub/internal/database"
	"internhub/internal/delivery/http/handler"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/infrastructure/persistence/postgres"
	"internhub/internal/pkg/jwt"
	"internhub/internal/repository"
	"internhub/internal/usecase"
	authuc "internhub/internal/usecase/auth"
	useruc "internhub/internal/usecase/user"
	"internhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure the route tree is wired from.
type Deps struct {
	Config    config.Config
	DB        database.DB
	Sessions  authuc.SessionStore
	Hub       *ws.Hub
	Generator ai.Generator
	Logger    *log.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(deps.DB)
	profileRepo := repository.NewPostgresProfileRepository(deps.DB)
	appRepo := repository.NewPostgresApplicationRepository(deps.DB)
	notifRepo := repository.NewPostgresNotificationRepository(deps.DB)
	settingsRepo := repository.NewPostgresSettingsRepository(deps.DB)

	authUC := authuc.NewService(userRepo, jwtSvc, deps.Sessions, deps.Logger)
	accountUC := useruc.NewService(userRepo)
	profileUC := usecase.NewProfileService(profileRepo, deps.Logger)
	submitUC := usecase.NewApplicationService(appRepo, notifRepo, deps.Logger)
	trackerUC := usecase.NewTrackerService(appRepo)
	letterUC := usecase.NewCoverLetterService(profileRepo, deps.Generator, deps.Logger)
	notifUC := usecase.NewNotificationService(notifRepo)
	settingsUC := usecase.NewSettingsService(settingsRepo)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	appHandler := handler.NewApplicationHandler(submitUC, trackerUC, letterUC)
	notifHandler := handler.NewNotificationHandler(notifUC)
	settingsHandler := handler.NewSettingsHandler(settingsUC, accountUC)
	wsHandler := ws.NewHandler(deps.Hub, deps.Logger)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	profileHandler.RegisterRoutes(protected)
	appHandler.RegisterRoutes(protected)
	notifHandler.RegisterRoutes(protected)
	settingsHandler.RegisterRoutes(protected)

	protected.Get("/ws/notifications", wsHandler.HandleNotificationsWS)
}
