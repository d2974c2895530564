package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notes-app/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/notes-app/app/api/handlers/v1/notes"
	"github.com/ribgsilva/notes-app/platform/web/handler"
	"github.com/ribgsilva/notes-app/platform/web/mid"
	"go.uber.org/zap"
)

const healthcheckPath = "/v1/healthcheck"

// Mux creates the engine with the common middlewares followed by extra, without any route
func Mux(log *zap.SugaredLogger, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mid.RequestID(), mid.Logger(log, healthcheckPath), mid.Cors(), gin.Recovery())
	r.Use(extra...)
	return r
}

func MapDefaults(r *gin.Engine) {
	r.GET(healthcheckPath, handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, h notes.Handlers) {
	g := r.Group("/api/notes")

	// static paths take precedence over :id
	g.GET("/test", handler.Wrapper(h.Test))
	g.POST("/test", handler.Wrapper(h.Echo))
	g.GET("/health", handler.Wrapper(h.Health))

	g.GET("", handler.Wrapper(h.List))
	g.POST("", handler.Wrapper(h.Create))
	g.GET("/:id", handler.Wrapper(h.Get))
	g.PUT("/:id", handler.Wrapper(h.Update))
	g.DELETE("/:id", handler.Wrapper(h.Delete))
}
