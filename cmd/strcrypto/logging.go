package main

import (
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

func formatter(logFormat string) (log.Formatter, error) {
	switch logFormat {
	case LogFormatJSON:
		return &log.JSONFormatter{
			TimestampFormat:   time.RFC3339Nano,
			DisableHTMLEscape: true,
		}, nil
	case LogFormatText:
		return &log.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		}, nil
	}
	return nil, fmt.Errorf("unsupported log format '%s'", logFormat)
}

func newLogger(out io.Writer, logFormat, logLevel string) (*log.Logger, error) {
	f, err := formatter(logFormat)
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(f)
	logger.SetLevel(level)
	return logger, nil
}
