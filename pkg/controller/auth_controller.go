package controller

import (
	"errors"
	"net/http"
	"strings"

	"auth-backend/pkg/bootstrap"
	"auth-backend/pkg/model"
	"auth-backend/pkg/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	userSvc model.UserService
	env     *bootstrap.Env
}

func NewAuthController(userSvc model.UserService, env *bootstrap.Env) *AuthController {
	return &AuthController{
		userSvc: userSvc,
		env:     env,
	}
}

// Login godoc
// @Summary Login
// @Description Verifies an email/password pair and issues an access/refresh token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.TokenResponse "Token pair successfully issued"
// @Failure 401 {object} model.ErrorResponse "Unauthorized: credentials do not match any user"
// @Failure 500 {object} model.ErrorResponse "Internal Server Error - Error signing tokens"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var request model.LoginRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
			Error: "Unauthorized",
		})
		return
	}

	user, err := ctrl.userSvc.Attempt(c, request.Email, request.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
			Error: "Unauthorized",
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctrl.respondWithTokenPair(c, user)
}

// Profile godoc
// @Summary Profile
// @Description Returns the user record bound to the presented access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.User "Profile successfully retrieved"
// @Failure 401 {object} model.ErrorResponse "Unauthorized: invalid, expired or revoked token"
// @Router /auth/profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	identity, ok := RetrieveIdentity(c, true)
	if !ok {
		return
	}
	user, err := ctrl.userSvc.GetUserByID(c, identity.UserID)
	if err != nil {
		// the subject no longer resolves, the token no longer authenticates anyone
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
			Error: "Unauthorized",
		})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented access token until its natural expiry
// @Tags Authentication
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Response "Logout successful"
// @Failure 401 {object} model.ErrorResponse "Unauthorized: invalid token"
// @Failure 500 {object} model.ErrorResponse "Internal Server Error"
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	authToken, ok := RetrieveAccessToken(c, true)
	if !ok {
		return
	}
	err := ctrl.userSvc.Logout(c, &authToken, ctrl.env.JWT.AccessTokenSecret)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, model.Response{
		Message: "Successfully logged out",
	})
}

// Refresh godoc
// @Summary Refresh token pair
// @Description Rotates a valid refresh token into a fresh access/refresh token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} model.TokenResponse "New token pair successfully issued"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Failure 500 {object} model.ErrorResponse "Refresh-Token Invalid"
// @Router /auth/refresh [post]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var request model.RefreshTokenRequest
	if err := c.ShouldBind(&request); err != nil {
		// a missing or unreadable refresh token reports the same way as an
		// undecodable one, matching the published wire contract
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: "Refresh-Token Invalid",
		})
		return
	}

	subject, err := ctrl.userSvc.VerifyRefreshToken(c, request.RefreshToken, ctrl.env.JWT.RefreshTokenSecret)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: "Refresh-Token Invalid",
		})
		return
	}

	user, err := ctrl.userSvc.GetUserByID(c, subject.ID)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, model.ErrorResponse{
			Error: "User not found",
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	// best effort: revoke the access token that accompanied the request
	if bearerToken := strings.Split(c.GetHeader("Authorization"), " "); len(bearerToken) == 2 {
		_ = ctrl.userSvc.Logout(c, &bearerToken[1], ctrl.env.JWT.AccessTokenSecret)
	}

	// the old refresh token is single-use; tombstone it before minting the
	// replacement pair so a replay cannot race the rotation
	if err := ctrl.userSvc.ConsumeRefreshToken(c, request.RefreshToken, ctrl.env.JWT.RefreshTokenSecret); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctrl.respondWithTokenPair(c, user)
}

// Register godoc
// @Summary Register
// @Description Creates a new user account with a bcrypt-hashed password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.User "User successfully created"
// @Failure 400 {object} model.ErrorResponse "Bad Request - Invalid input data"
// @Failure 409 {object} model.ErrorResponse "Conflict - Email already registered"
// @Failure 500 {object} model.ErrorResponse "Internal Server Error"
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var request model.RegisterRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	user := &model.User{
		Name:  request.Name,
		Email: request.Email,
	}
	err := ctrl.userSvc.Register(c, user, request.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		c.AbortWithStatusJSON(http.StatusConflict, model.ErrorResponse{
			Error: "Email already registered",
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// respondWithTokenPair mints a fresh access/refresh pair for the user and
// writes the token array structure shared by login and refresh.
func (ctrl *AuthController) respondWithTokenPair(c *gin.Context, user *model.User) {
	accessToken, err := ctrl.userSvc.CreateAccessToken(c, user, ctrl.env.JWT.AccessTokenSecret, ctrl.env.JWT.AccessTokenTTLSeconds())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	refreshToken, err := ctrl.userSvc.CreateRefreshToken(c, user, ctrl.env.JWT.RefreshTokenSecret, ctrl.env.JWT.RefreshTokenTTL)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    ctrl.env.JWT.AccessTokenTTLSeconds(),
	})
}
