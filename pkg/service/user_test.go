package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	tokensvc "auth-backend/internal/token"
	"auth-backend/pkg/bootstrap"
	"auth-backend/pkg/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testRefreshSecret = "test-refresh-secret"

// matchCommandAndKey only compares the redis command and key, since the
// stored value and TTL depend on token contents and the clock.
func matchCommandAndKey(expected, actual []interface{}) error {
	if len(expected) < 2 || len(actual) < 2 {
		return fmt.Errorf("expected at least command and key, got %v", actual)
	}
	if expected[0] != actual[0] || expected[1] != actual[1] {
		return fmt.Errorf("expected %v %v, got %v %v", expected[0], expected[1], actual[0], actual[1])
	}
	return nil
}

func newTestService(t *testing.T) (model.UserService, *bootstrap.Mocks) {
	t.Helper()
	app, mocks := bootstrap.NewTestApp()
	mocks.DBMock.MatchExpectationsInOrder(false)
	mocks.CacheMock.MatchExpectationsInOrder(false)
	return NewUserService(app.Conn, app.Cache), mocks
}

func userRow(t *testing.T, id, name, email, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "name", "email", "password"}).
		AddRow(id, name, email, string(hash))
}

func TestUserService_Attempt(t *testing.T) {
	svc, mocks := newTestService(t)
	mocks.DBMock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)email(.+)`).
		WillReturnRows(userRow(t, "42", "Alice", "a@x.com", "secret"))

	user, err := svc.Attempt(context.Background(), "a@x.com", "secret")
	assert.NoError(t, err)
	assert.Equal(t, "42", user.ID)
}

func TestUserService_Attempt_WrongPassword(t *testing.T) {
	svc, mocks := newTestService(t)
	mocks.DBMock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)email(.+)`).
		WillReturnRows(userRow(t, "42", "Alice", "a@x.com", "secret"))

	user, err := svc.Attempt(context.Background(), "a@x.com", "not-the-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestUserService_Attempt_UnknownEmail(t *testing.T) {
	svc, mocks := newTestService(t)
	mocks.DBMock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)email(.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	user, err := svc.Attempt(context.Background(), "nobody@x.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	svc, mocks := newTestService(t)
	mocks.DBMock.ExpectQuery(`SELECT (.+) FROM "users" WHERE (.+)id(.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password"}))

	user, err := svc.GetUserByID(context.Background(), "99")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_VerifyRefreshToken(t *testing.T) {
	svc, mocks := newTestService(t)

	token, err := tokensvc.CreateRefreshToken(&model.User{ID: "42"}, testRefreshSecret, 3600)
	assert.NoError(t, err)
	claims, err := tokensvc.ExtractRefreshClaimsFromToken(token, testRefreshSecret)
	assert.NoError(t, err)

	mocks.CacheMock.ExpectExists(claims.ID).SetVal(0)

	user, err := svc.VerifyRefreshToken(context.Background(), token, testRefreshSecret)
	assert.NoError(t, err)
	assert.Equal(t, "42", user.ID)
}

func TestUserService_VerifyRefreshToken_Consumed(t *testing.T) {
	svc, mocks := newTestService(t)

	token, err := tokensvc.CreateRefreshToken(&model.User{ID: "42"}, testRefreshSecret, 3600)
	assert.NoError(t, err)
	claims, err := tokensvc.ExtractRefreshClaimsFromToken(token, testRefreshSecret)
	assert.NoError(t, err)

	mocks.CacheMock.ExpectExists(claims.ID).SetVal(1)

	user, err := svc.VerifyRefreshToken(context.Background(), token, testRefreshSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, user)
}

func TestUserService_VerifyRefreshToken_Corrupted(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.VerifyRefreshToken(context.Background(), "garbage", testRefreshSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Nil(t, user)
}

func TestUserService_ConsumeRefreshToken(t *testing.T) {
	svc, mocks := newTestService(t)

	token, err := tokensvc.CreateRefreshToken(&model.User{ID: "42"}, testRefreshSecret, 3600)
	assert.NoError(t, err)
	claims, err := tokensvc.ExtractRefreshClaimsFromToken(token, testRefreshSecret)
	assert.NoError(t, err)

	mocks.CacheMock.CustomMatch(matchCommandAndKey).
		ExpectSet(claims.ID, token, time.Hour).SetVal("OK")

	err = svc.ConsumeRefreshToken(context.Background(), token, testRefreshSecret)
	assert.NoError(t, err)
}

func TestUserService_Logout(t *testing.T) {
	svc, mocks := newTestService(t)

	token, err := tokensvc.CreateAccessToken(&model.User{ID: "42"}, "test-access-secret", 3600)
	assert.NoError(t, err)
	claims, err := tokensvc.ExtractCustomClaimsFromToken(&token, "test-access-secret")
	assert.NoError(t, err)

	mocks.CacheMock.CustomMatch(matchCommandAndKey).
		ExpectSet(claims.ID, token, time.Hour).SetVal("OK")

	err = svc.Logout(context.Background(), &token, "test-access-secret")
	assert.NoError(t, err)
}

func TestUserService_Logout_InvalidToken(t *testing.T) {
	svc, _ := newTestService(t)

	token := "garbage"
	err := svc.Logout(context.Background(), &token, "test-access-secret")
	assert.Error(t, err)
}
