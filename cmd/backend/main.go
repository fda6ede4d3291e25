package main

import (
	"fmt"

	"auth-backend/docs"
	"auth-backend/pkg/bootstrap"
	"auth-backend/pkg/router"
	"auth-backend/pkg/service"

	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

func SetUpSwagger(spec *swag.Spec, app *bootstrap.Application) {
	spec.BasePath = "/"
	spec.Host = fmt.Sprintf("%s:%d", "localhost", app.Env.Server.Port)
	spec.Schemes = []string{"http", "https"}
	spec.Title = "JWT Auth Backend API"
	spec.Description = "Dual-token (access/refresh) JWT authentication backend"
}

func main() {
	// Init config
	app := bootstrap.App()

	// Init services
	userService := service.NewUserService(app.Conn, app.Cache)

	services := &router.Services{
		UserService: userService,
	}

	// Init routes
	router.RegisterRoutes(app, services)

	// setup swagger
	// @securityDefinitions.apikey ApiKeyAuth
	// @in header
	// @name Authorization
	SetUpSwagger(docs.SwaggerInfo, app)
	app.Engine.GET("/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerfiles.Handler,
			ginSwagger.DeepLinking(true),
		),
	)

	app.Run()
}
