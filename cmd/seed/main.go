package main

import (
	"flag"
	"log"

	"auth-backend/pkg/bootstrap"
	"auth-backend/pkg/model"

	"github.com/go-faker/faker/v4"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the user table with fake accounts for local development.
// Every seeded account uses the password given by -password.
func main() {
	count := flag.Int("count", 10, "number of users to seed")
	password := flag.String("password", "password123", "password for all seeded users")
	flag.Parse()

	env := bootstrap.NewEnv()
	db := bootstrap.NewDB(env)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < *count; i++ {
		user := &model.User{
			Name:     faker.Name(),
			Email:    faker.Email(),
			Password: string(hash),
		}
		if err := db.Create(user).Error; err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded user %s <%s>", user.Name, user.Email)
	}
}
