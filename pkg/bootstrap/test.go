package bootstrap

import (
	"log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Mocks struct {
	DBMock    sqlmock.Sqlmock
	CacheMock redismock.ClientMock
}

// NewTestApp builds an Application on top of sqlmock and redismock so that
// services and controllers can be exercised without a real database or redis.
func NewTestApp() (*Application, *Mocks) {
	sqlDB, dbMock, err := sqlmock.New()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal(err)
	}

	cache, cacheMock := redismock.NewClientMock()

	env := &Env{
		Server: Server{Port: 8080, TimeZone: "UTC"},
		JWT: JWTEnv{
			AccessTokenSecret:  "test-access-secret",
			AccessTokenTTL:     60,
			RefreshTokenSecret: "test-refresh-secret",
			RefreshTokenTTL:    1209600,
		},
	}

	app := &Application{
		Env:    env,
		Conn:   conn,
		Cache:  cache,
		Engine: gin.New(),
	}

	return app, &Mocks{DBMock: dbMock, CacheMock: cacheMock}
}
