package kernel

import (
	"log"
	"os"
)

// Logger is satisfied by *log.Logger; the core never imports a third-party
// logging package (none appears anywhere in the retrieved corpus, which logs
// with bare fmt.Printf) but accepts one via this interface if a caller wants
// structured logging wired in above this layer.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NewStdLogger returns a Logger backed by the standard library, prefixed for
// kernel diagnostics.
func NewStdLogger() Logger {
	return log.New(os.Stdout, "zeos: ", log.LstdFlags)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
