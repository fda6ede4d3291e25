package model

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ID       string `json:"id" gorm:"type:varchar(36);primary_key"`
	Name     string `json:"name" gorm:"type:varchar(255)"`
	Email    string `json:"email" gorm:"type:varchar(255);uniqueIndex"`
	Password string `json:"-" gorm:"type:varchar(255)"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type UserService interface {
	// Attempt verifies an email/password pair and resolves the owning user.
	Attempt(ctx context.Context, email string, password string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	Register(ctx context.Context, user *User, password string) error
	CreateAccessToken(ctx context.Context, user *User, secret string, expiry int64) (accessToken string, err error)
	CreateRefreshToken(ctx context.Context, user *User, secret string, expiry int64) (refreshToken string, err error)
	VerifyRefreshToken(ctx context.Context, refreshToken string, secret string) (user *User, err error)
	ConsumeRefreshToken(ctx context.Context, refreshToken string, secret string) error
	Logout(ctx context.Context, token *string, secret string) error
}
