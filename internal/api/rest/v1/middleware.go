package v1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

const bearerPrefix = "Bearer "

// RequireAuth rejects requests without a valid bearer token and stores the caller's
// user id in the gin context.
func RequireAuth(tokenService accounts.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortWithError(ctx, http.StatusUnauthorized, msgMissingAuthHeader)
			return
		}

		principal, err := tokenService.Verify(strings.TrimPrefix(header, bearerPrefix))
		switch {
		case err == nil:
		case errors.Is(err, accounts.ErrSecretNotConfigured):
			abortWithError(ctx, http.StatusInternalServerError, msgServerConfiguration)
			return
		case errors.Is(err, accounts.ErrMissingSubject):
			abortWithError(ctx, http.StatusUnauthorized, msgUserNotFound)
			return
		case errors.Is(err, accounts.ErrInvalidToken):
			abortWithError(ctx, http.StatusUnauthorized, msgInvalidToken)
			return
		default:
			abortWithError(ctx, http.StatusInternalServerError, msgAuthenticationFailed)
			return
		}

		if principal == nil || principal.UserID == "" {
			abortWithError(ctx, http.StatusUnauthorized, msgUserNotFound)
			return
		}

		ctx.Set(ContextUserID, principal.UserID)
		ctx.Set(ContextUserEmail, principal.Email)
		ctx.Next()
	}
}

// CurrentUserID returns the id stored by RequireAuth
func CurrentUserID(ctx *gin.Context) string {
	return ctx.GetString(ContextUserID)
}

// Metrics records request counts and latencies per route template
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTPRequest(ctx.Request.Method, route, ctx.Writer.Status(), time.Since(start))
	}
}

// RequestLogger logs one line per request
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		fields := []interface{}{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", ctx.ClientIP(),
		}
		if userID := CurrentUserID(ctx); userID != "" {
			fields = append(fields, "user_id", userID)
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error(append([]interface{}{"request failed"}, fields...)...)
		case status >= http.StatusBadRequest:
			log.Warn(append([]interface{}{"request rejected"}, fields...)...)
		default:
			log.Info(append([]interface{}{"request handled"}, fields...)...)
		}
	}
}
