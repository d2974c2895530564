package env

import (
	"strconv"

	"go.uber.org/zap"
)

// BoolDefault return the result of searching an env var, if the env var value is empty, return a default value as bool.
// Accepts the same values as strconv.ParseBool (1, t, T, TRUE, true, True, 0, f, F, ...).
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	b, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool: ", err)
		b, _ = strconv.ParseBool(def)
	}
	return b
}
