package emojiscape

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Log is the logger resource injected into systems. It wraps charmbracelet's
// logger so modules get structured, leveled output without carrying their own
// sinks.
type Log struct {
	*log.Logger
}

func NewLog(prefix string, debug bool) *Log {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return &Log{l}
}

// NewNopLog returns a logger that discards everything. Tests use it so
// systems can be exercised without console noise.
func NewNopLog() *Log {
	l := log.New(io.Discard)
	return &Log{l}
}

// LoggingModule installs the logger resource.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewLog(m.Prefix, m.Debug))
}
