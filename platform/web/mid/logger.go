package mid

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger writes one log line per request. Paths in skipPaths are not logged.
func Logger(log *zap.SugaredLogger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		if _, ok := skip[path]; ok {
			return
		}

		status := ctx.Writer.Status()
		kv := []any{
			"method", ctx.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"remote", ctx.ClientIP(),
			"requestId", GetRequestID(ctx),
		}

		switch {
		case status >= 500:
			log.Errorw("request", kv...)
		case status >= 400:
			log.Warnw("request", kv...)
		default:
			log.Infow("request", kv...)
		}
	}
}
