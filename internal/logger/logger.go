package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates the logger used across the application.
func New(serviceName string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if os.Getenv("GUESSWHO_DEBUG") != "" {
		l.SetLevel(logrus.DebugLevel)
	}
	l.AddHook(&serviceHook{name: serviceName})
	return l
}

type serviceHook struct {
	name string
}

func (h *serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *serviceHook) Fire(e *logrus.Entry) error {
	e.Data["service"] = h.name
	return nil
}
