package main

import (
	"log"

	"auth-backend/pkg/bootstrap"
	"auth-backend/pkg/model"
)

func main() {
	env := bootstrap.NewEnv()
	db := bootstrap.NewDB(env)
	err := db.AutoMigrate(
		&model.User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
