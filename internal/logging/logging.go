package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minerun/internal/config"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 7
)

// Setup configures every logger in loggers the same way: the level from
// cfg, coloured text on console (nothing when console is nil) and, when
// cfg.LogFile is set, JSON lines in a size-rotated file.
func Setup(cfg config.Config, console io.Writer, loggers ...*logrus.Logger) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if console == nil {
		console = io.Discard
	}

	var hook logrus.Hook
	if cfg.LogFile != "" {
		hook, err = rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.LogFile,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("log file %s: %w", cfg.LogFile, err)
		}
	}

	for _, log := range loggers {
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
		log.SetOutput(console)
		if hook != nil {
			log.AddHook(hook)
		}
	}
	return nil
}
