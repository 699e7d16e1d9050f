package logging

import (
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp     = "app"
	SourceHTTP    = "http"
	SourceChat    = "chat"
	SourceAgent   = "agent"
	SourceDataset = "dataset"
)

var (
	initOnce   sync.Once
	baseLogger *log.Logger
)

// Init configures the base logger and redirects stdlib log output into it.
func Init() {
	initOnce.Do(func() {
		baseLogger = log.NewWithOptions(os.Stdout, log.Options{
			TimeFunction:    log.NowUTC,
			TimeFormat:      time.RFC3339Nano,
			Level:           log.InfoLevel,
			ReportTimestamp: true,
			Formatter:       log.LogfmtFormatter,
		})

		stdLogger := baseLogger.With("source", SourceApp).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})

		stdlog.SetFlags(0)
		stdlog.SetOutput(stdLogger.Writer())
	})
}

// SetDebug switches the base logger between debug and info level.
func SetDebug(debug bool) {
	Init()
	if debug {
		baseLogger.SetLevel(log.DebugLevel)
		return
	}
	baseLogger.SetLevel(log.InfoLevel)
}

// Logger returns a logfmt logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()
	return baseLogger.With("source", source)
}

// StdLogger returns a stdlib logger that writes logfmt output with a source.
func StdLogger(source string) *stdlog.Logger {
	Init()
	return baseLogger.With("source", source).StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})
}
