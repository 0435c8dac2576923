package timedmap

import (
	"github.com/achu-1612/timedmap/log"
)

type logger = log.Logger

func newLogger(name string, suppressed, debugLogs bool) logger {
	return log.New(name, suppressed, debugLogs)
}
