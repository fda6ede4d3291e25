package service

import (
	"context"
	"errors"
	"time"

	tokensvc "auth-backend/internal/token"
	"auth-backend/pkg/model"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("token is invalid or has been consumed")
	ErrEmailTaken         = errors.New("email already registered")
)

func NewUserService(db *gorm.DB, cache *redis.Client) model.UserService {
	return &UserServiceImpl{
		db:    db,
		cache: cache,
	}
}

type UserServiceImpl struct {
	db    *gorm.DB
	cache *redis.Client
}

// Attempt implements the credential check: resolve the user by email and
// compare the password against the stored bcrypt hash. Both failure modes
// collapse into ErrInvalidCredentials so callers cannot probe for emails.
func (us *UserServiceImpl) Attempt(ctx context.Context, email string, password string) (*model.User, error) {
	user := &model.User{}
	err := us.db.WithContext(ctx).Where(&model.User{Email: email}).First(user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (us *UserServiceImpl) Register(ctx context.Context, user *model.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	err = us.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailTaken
	}
	return err
}

func (us *UserServiceImpl) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	err := us.db.WithContext(ctx).Where(&model.User{ID: id}).First(user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, err
	}
	return user, nil
}

func (us *UserServiceImpl) CreateAccessToken(_ context.Context, user *model.User, secret string, expiry int64) (accessToken string, err error) {
	return tokensvc.CreateAccessToken(user, secret, expiry)
}

func (us *UserServiceImpl) CreateRefreshToken(_ context.Context, user *model.User, secret string, expiry int64) (refreshToken string, err error) {
	return tokensvc.CreateRefreshToken(user, secret, expiry)
}

// VerifyRefreshToken checks signature and expiry, then rejects tokens whose
// JTI has been tombstoned by a previous rotation.
func (us *UserServiceImpl) VerifyRefreshToken(ctx context.Context, refreshToken string, secret string) (user *model.User, err error) {
	claims, err := tokensvc.ExtractRefreshClaimsFromToken(refreshToken, secret)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	exists, err := us.cache.Exists(ctx, claims.ID).Result()
	if err != nil {
		return nil, err
	}
	if exists == 1 {
		return nil, ErrTokenInvalid
	}
	return &model.User{
		ID: claims.UserID,
	}, nil
}

// ConsumeRefreshToken marks a refresh token as used for the rest of its
// lifetime, making rotation single-use.
func (us *UserServiceImpl) ConsumeRefreshToken(ctx context.Context, refreshToken string, secret string) error {
	claims, err := tokensvc.ExtractRefreshClaimsFromToken(refreshToken, secret)
	if err != nil {
		return ErrTokenInvalid
	}
	ttl := claims.ExpiresAt.Unix() - time.Now().Unix()
	if ttl < 0 {
		return nil
	}
	return us.cache.Set(ctx, claims.ID, refreshToken, time.Duration(ttl)*time.Second).Err()
}

// Logout implements model.UserService.
func (us *UserServiceImpl) Logout(ctx context.Context, token *string, secret string) error {
	claims, err := tokensvc.ExtractCustomClaimsFromToken(token, secret)
	if err != nil {
		return err
	}
	ttl := claims.ExpiresAt.Unix() - time.Now().Unix()
	if ttl < 0 {
		return nil
	}
	return us.cache.Set(ctx, claims.ID, *token, time.Duration(ttl)*time.Second).Err()
}
