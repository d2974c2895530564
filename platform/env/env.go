// Package env reads configuration from environment variables, logging where each value came from.
package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the value of an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		log.Debugw("config", "env", env, "source", "environment")
		return v
	}
	log.Debugw("config", "env", env, "source", "default")
	return def
}

// Must return the value of an env var and stops the application when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalw("config", "env", env, "ERROR", "required env var not set")
	}
	return v
}
