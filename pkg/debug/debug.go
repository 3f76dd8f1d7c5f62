package debug

import (
	"os"
	"sync"

	"github.com/rycus86/textpatch/pkg/env"
	"github.com/sirupsen/logrus"
)

var (
	enabled bool

	once   sync.Once
	logger *logrus.Logger
)

// SetEnabled forces debug mode on or off, regardless of the environment.
func SetEnabled(value bool) {
	enabled = value
	Log().SetLevel(level())
}

func IsEnabled() bool {
	return enabled || env.IsSet(env.DebugKey)
}

// Log returns the shared logger, writing to stderr.
func Log() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		logger.SetLevel(level())
	})

	return logger
}

func level() logrus.Level {
	if !enabled && env.IsNotSet(env.DebugKey) {
		return logrus.WarnLevel
	}
	return logrus.DebugLevel
}
