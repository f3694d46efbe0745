package launchboard

import (
	"os"
	"strconv"

	"github.com/raykavin/launchboard/pkg/logger"
	"github.com/raykavin/launchboard/pkg/logger/zerolog"
)

const (
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogLevel      = "LAUNCHBOARD_LOG_LEVEL"
	envLogTimeFormat = "LAUNCHBOARD_LOG_TIME_FORMAT"
	envLogColor      = "LAUNCHBOARD_LOG_COLOR"
	envLogJSON       = "LAUNCHBOARD_LOG_JSON"
)

// DefaultLog is the process wide logger, configured from the environment.
var DefaultLog logger.Logger

func init() {
	log, err := NewLogger()
	if err != nil {
		panic(err)
	}

	DefaultLog = log
}

// NewLogger creates a logger configured from LAUNCHBOARD_LOG_* variables.
func NewLogger() (logger.Logger, error) {
	colored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return nil, err
	}

	jsonFormat, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return nil, err
	}

	log, err := zerolog.New(zerolog.Options{
		Level:          getEnvWithDefault(envLogLevel, defaultLogLevel),
		DateTimeLayout: getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat),
		Colored:        colored,
		JSON:           jsonFormat,
	})
	if err != nil {
		return nil, err
	}

	return log, nil
}

// getEnvWithDefault returns the value of the environment variable or the default if not set
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolEnv gets a boolean environment variable with a default value
func parseBoolEnv(key, defaultValue string) (bool, error) {
	return strconv.ParseBool(getEnvWithDefault(key, defaultValue))
}
