package router

import (
	"auth-backend/pkg/bootstrap"
	"auth-backend/pkg/controller"
	"auth-backend/pkg/middleware"
	"auth-backend/pkg/model"
)

type Services struct {
	UserService model.UserService
}

func RegisterRoutes(app *bootstrap.Application, services *Services) {
	// Register Global Middleware
	cors := middleware.CORSMiddleware()
	app.Engine.Use(cors)

	// Register Auth Routes
	authController := controller.NewAuthController(services.UserService, app.Env)
	RegisterAuthRoutes(app, authController)
}
