package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthMessage is reported by /health while the process is serving
const HealthMessage = "Wardrobe backend is running"

// DatabaseChecker reports whether the database is reachable
type DatabaseChecker func(ctx context.Context) error

// HealthHandler defines the interface for liveness endpoints
type HealthHandler interface {
	Health(ctx *gin.Context)
	Ping(ctx *gin.Context)
}

type healthHandler struct {
	checkDatabase DatabaseChecker
	now           func() time.Time
}

// NewHealthHandler creates a new HealthHandler. checkDatabase may be nil.
func NewHealthHandler(checkDatabase DatabaseChecker) HealthHandler {
	return &healthHandler{
		checkDatabase: checkDatabase,
		now:           time.Now,
	}
}

// Health always answers 200; database_connected tells whether the database answered a ping
func (handler *healthHandler) Health(ctx *gin.Context) {
	connected := false
	if handler.checkDatabase != nil {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		connected = handler.checkDatabase(checkCtx) == nil
		cancel()
	}

	ctx.JSON(http.StatusOK, HealthResponse{
		Status:            "ok",
		Message:           HealthMessage,
		Timestamp:         handler.now().UTC(),
		DatabaseConnected: connected,
	})
}

// Ping answers pong
func (handler *healthHandler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
