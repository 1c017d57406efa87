package handlers

import (
	"os"

	"github.com/mattn/go-isatty"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// SetupLogging installs the process logger. Console output is used on a
// terminal, JSON otherwise.
func SetupLogging(debug bool) {
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	opts := loggerOptions(debug || os.Getenv("DEBUG") == "true", tty)
	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))
}

func loggerOptions(debug, tty bool) zap.Options {
	opts := zap.Options{
		Development: tty,
		TimeEncoder: zapcore.ISO8601TimeEncoder,
		ZapOpts:     []uberzap.Option{uberzap.AddCaller()},
	}
	if debug {
		opts.Level = zapcore.DebugLevel
	} else {
		opts.Level = zapcore.InfoLevel
	}
	return opts
}
