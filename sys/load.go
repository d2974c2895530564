package sys

import (
	"github.com/ribgsilva/notes-app/platform/env"
	"go.uber.org/zap"
)

// LoadHttp fills Configs.Http and Configs.Swagger
func LoadHttp(log *zap.SugaredLogger) {
	Configs.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	Configs.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	Configs.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+Configs.Http.Port)
}

// LoadDatabase fills Configs.Database
func LoadDatabase(log *zap.SugaredLogger) {
	Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", DriverMySQL)
	Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note")
	Configs.Database.Name = env.OrDefault(log, "DATABASE_NAME", "note")
	Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
}

// LoadCache fills Configs.Cache
func LoadCache(log *zap.SugaredLogger) {
	Configs.Cache.Enabled = env.BoolDefault(log, "CACHE_ENABLED", "t")
	Configs.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	Configs.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	Configs.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	Configs.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	Configs.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	Configs.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
}

// LoadNewRelic fills Configs.NewRelic
func LoadNewRelic(log *zap.SugaredLogger, appName string) {
	Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", appName)
	Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
}

// LoadMessaging fills Configs.Messaging, MESSAGING_TOPIC_NAME is required and at least one worker is used
func LoadMessaging(log *zap.SugaredLogger) {
	Configs.Messaging.TopicName = env.Must(log, "MESSAGING_TOPIC_NAME")
	Configs.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	if Configs.Messaging.MaxWorkers < 1 {
		log.Warnw("config", "env", "MESSAGING_MAX_WORKERS", "value", Configs.Messaging.MaxWorkers, "using", 1)
		Configs.Messaging.MaxWorkers = 1
	}
	Configs.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
}
