package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/linkstats/internal/services"
	"github.com/avolkov/linkstats/internal/tokens"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController регистрация и вход. Оба эндпоинта публичные.
type AuthController struct {
	accounts  AccountStore
	jwtSecret []byte
	jwtExpire time.Duration
}

func NewAuthController(accounts AccountStore, jwtSecret []byte, jwtExpire time.Duration) *AuthController {
	return &AuthController{
		accounts:  accounts,
		jwtSecret: jwtSecret,
		jwtExpire: jwtExpire,
	}
}

// Register обрабатывает POST /api/auth/public/register.
//
// Возвращает 200 с сообщением об успехе, 400 при занятом имени или почте,
// 500 при ошибке хранилища.
func (a *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	regCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	_, err := a.accounts.Register(regCtx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrDuplicateKey):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "username or email already taken"})
		default:
			_ = ctx.Error(err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login обрабатывает POST /api/auth/public/login.
//
// Возвращает 200 с JWT, 401 при неверной паре логин/пароль,
// 500 при ошибке хранилища.
func (a *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	acc, err := a.accounts.Authenticate(authCtx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	token, tokenErr := tokens.GenerateAccountJWT(acc.ID, acc.Username, a.jwtExpire, a.jwtSecret)
	if tokenErr != nil {
		_ = ctx.Error(tokenErr)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token})
}
