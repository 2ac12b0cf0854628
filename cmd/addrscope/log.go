package main

import (
	"io"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

// setupLog configures the global logger. Diagnostics go to stderr so they
// never mix with reports on stdout.
func setupLog(level string, color bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	var out io.Writer = colorable.NewColorableStderr()
	if !color {
		out = colorable.NewNonColorable(out)
	}

	logrus.SetLevel(lvl)
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     color,
		DisableColors:   !color,
		FullTimestamp:   true,
		TimestampFormat: time.RFC822,
	})
	return nil
}
