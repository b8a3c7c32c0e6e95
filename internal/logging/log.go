// Package logging provides the package-level logger used by the cql engine
// and its CLI. It follows the same wiring as the go-kit/log-based loggers
// used across this dependency set: a single logfmt logger, filtered by
// level, exposed as a package variable and driven through the
// github.com/go-kit/log/level helpers (level.Error(logging.Logger).Log(...)).
package logging

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Logger is the process-wide logger. SetLevel adjusts its filter; the
// default is "info".
var Logger = newLogger()

func newLogger() log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	l = level.NewFilter(l, level.AllowInfo())
	l = log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.Caller(5))
	return l
}

// SetLevel reconfigures Logger's level filter. Valid names are "debug",
// "info", "warn", "error".
func SetLevel(name string) {
	base := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	var allowed level.Option
	switch name {
	case "debug":
		allowed = level.AllowDebug()
	case "warn":
		allowed = level.AllowWarn()
	case "error":
		allowed = level.AllowError()
	default:
		allowed = level.AllowInfo()
	}
	Logger = log.With(level.NewFilter(base, allowed), "ts", log.DefaultTimestampUTC, "caller", log.Caller(5))
}
