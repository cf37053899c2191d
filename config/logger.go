package config

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger points the standard logger at the configured output. File
// outputs rotate via lumberjack using the size, backup and age limits from
// LoggingConfig. It returns the writer so callers can reuse it for access logs.
func SetupLogger(cfg *LoggingConfig) io.Writer {
	var writer io.Writer

	switch cfg.Output {
	case "file":
		writer = newRotatingWriter(cfg)
	case "both":
		writer = io.MultiWriter(os.Stdout, newRotatingWriter(cfg))
	default:
		writer = os.Stdout
	}

	log.SetOutput(writer)
	log.SetFlags(log.LstdFlags | log.LUTC)
	return writer
}

func newRotatingWriter(cfg *LoggingConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}
