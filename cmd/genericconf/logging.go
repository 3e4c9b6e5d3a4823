// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package genericconf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var globalFileLoggerFactory = fileLoggerFactory{}

type fileLoggerFactory struct {
	// writerMutex is to avoid parallel writes to the file-logger
	writerMutex sync.Mutex
	writer      *lumberjack.Logger

	cancel context.CancelFunc

	// writeStartPing and writeDonePing stand in for a buffered channel of
	// records consumed by another goroutine.
	writeStartPing chan struct{}
	writeDonePing  chan struct{}
}

// Write drops the record when writeStartPing (of size BufSize) is full.
func (l *fileLoggerFactory) Write(p []byte) (n int, err error) {
	select {
	case l.writeStartPing <- struct{}{}:
		l.writerMutex.Lock()
		if l.writer != nil {
			_, _ = l.writer.Write(p)
		}
		l.writerMutex.Unlock()
		l.writeDonePing <- struct{}{}
	default:
	}
	return len(p), nil
}

// newFileWriter is not threadsafe
func (l *fileLoggerFactory) newFileWriter(config *FileLoggingConfig, filename string) io.Writer {
	_ = l.close()
	l.writer = &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		LocalTime:  config.LocalTime,
		Compress:   config.Compress,
	}
	bufSize := config.BufSize
	if bufSize < 1 {
		bufSize = 1
	}
	l.writeStartPing = make(chan struct{}, bufSize)
	l.writeDonePing = make(chan struct{}, bufSize)
	// capture copy
	writeStartPing := l.writeStartPing
	writeDonePing := l.writeDonePing
	var consumerCtx context.Context
	consumerCtx, l.cancel = context.WithCancel(context.Background())
	go func() {
		for {
			select {
			case <-writeStartPing:
				<-writeDonePing
			case <-consumerCtx.Done():
				return
			}
		}
	}()
	return l
}

// close is not threadsafe
func (l *fileLoggerFactory) close() error {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.writerMutex.Lock()
	defer l.writerMutex.Unlock()
	if l.writer != nil {
		if err := l.writer.Close(); err != nil {
			return err
		}
		l.writer = nil
	}
	return nil
}

// CloseFileLogger flushes and closes the rotating log file, if any.
func CloseFileLogger() error {
	return globalFileLoggerFactory.close()
}

var ErrUnknownLogType = errors.New("unknown log type")

func HandlerFromLogType(logType string, output io.Writer) (slog.Handler, error) {
	switch strings.ToLower(logType) {
	case "plaintext":
		return log.NewTerminalHandler(output, false), nil
	case "json":
		return log.JSONHandler(output), nil
	}
	return nil, fmt.Errorf("%w %q, expected plaintext or json", ErrUnknownLogType, logType)
}

func ToSlogLevel(str string) (slog.Level, error) {
	switch strings.ToUpper(str) {
	case "CRIT", "CRITICAL":
		return log.LevelCrit, nil
	case "ERROR":
		return log.LevelError, nil
	case "WARN", "WARNING":
		return log.LevelWarn, nil
	case "INFO":
		return log.LevelInfo, nil
	case "DEBUG":
		return log.LevelDebug, nil
	case "TRACE":
		return log.LevelTrace, nil
	}
	return log.LevelInfo, fmt.Errorf("invalid log level %q, valid values are CRIT, ERROR, WARN, INFO, DEBUG, TRACE", str)
}

// InitLog is not threadsafe. pathResolver may be nil, in which case the file
// logging path is used as given.
func InitLog(logType string, logLevel string, fileLoggingConfig *FileLoggingConfig, pathResolver func(string) string) error {
	return initLogTo(os.Stderr, logType, logLevel, fileLoggingConfig, pathResolver)
}

func initLogTo(stderr io.Writer, logType string, logLevel string, fileLoggingConfig *FileLoggingConfig, pathResolver func(string) string) error {
	// always close previous instance of file logger
	if err := globalFileLoggerFactory.close(); err != nil {
		return fmt.Errorf("failed to close file writer: %w", err)
	}
	output := stderr
	if fileLoggingConfig != nil && fileLoggingConfig.Enable {
		path := fileLoggingConfig.File
		if pathResolver != nil {
			path = pathResolver(path)
		}
		output = io.MultiWriter(
			stderr,
			// on overflow writeStartPing are dropped silently
			globalFileLoggerFactory.newFileWriter(fileLoggingConfig, path),
		)
	}
	handler, err := HandlerFromLogType(logType, output)
	if err != nil {
		return fmt.Errorf("error parsing log type when creating handler: %w", err)
	}
	slogLevel, err := ToSlogLevel(logLevel)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(slogLevel)
	log.SetDefault(log.NewLogger(glogger))
	return nil
}
