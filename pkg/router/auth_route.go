package router

import (
	"auth-backend/pkg/bootstrap"
	"auth-backend/pkg/controller"
	"auth-backend/pkg/middleware"
)

func RegisterAuthRoutes(app *bootstrap.Application, controller *controller.AuthController) {
	r := app.Engine.Group("/auth")
	authMiddleware := middleware.AuthMiddleware(app.Env.JWT.AccessTokenSecret, app.Cache)

	r.POST("/login", controller.Login)
	r.POST("/refresh", controller.Refresh)
	r.POST("/register", controller.Register)
	r.GET("/profile", authMiddleware, controller.Profile)
	r.POST("/logout", authMiddleware, controller.Logout)
}
