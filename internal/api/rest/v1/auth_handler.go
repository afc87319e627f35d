package v1

import (
	"net/http"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for local signup and login
type AuthHandler interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
}

type authHandler struct {
	accountService accounts.AccountService
	logger         logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService accounts.AccountService, logger logger.Logger) AuthHandler {
	return &authHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Signup creates an account and returns a session token
func (handler *authHandler) Signup(ctx *gin.Context) {
	var request CredentialsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	account, token, err := handler.accountService.Signup(ctx.Request.Context(), request.ToDomain())
	if err != nil {
		status, message := authError(err, msgSignupFailed)
		if status >= http.StatusInternalServerError {
			handler.logger.Error("signup failed", "error", err)
		}
		abortWithError(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusCreated, NewAuthResponse(account, token))
}

// Login exchanges credentials for a session token
func (handler *authHandler) Login(ctx *gin.Context) {
	var request CredentialsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	account, token, err := handler.accountService.Login(ctx.Request.Context(), request.ToDomain())
	if err != nil {
		status, message := authError(err, msgLoginFailed)
		if status >= http.StatusInternalServerError {
			handler.logger.Error("login failed", "error", err)
		}
		abortWithError(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusOK, NewAuthResponse(account, token))
}
