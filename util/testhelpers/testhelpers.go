// Copyright 2021-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package testhelpers

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/log"

	"github.com/offchainlabs/intlog/util/colors"
	testflag "github.com/offchainlabs/intlog/util/testhelpers/flag"
)

// Fail a test should an error occur
func RequireImpl(t *testing.T, err error, printables ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatal(colors.Red, printables, err, colors.Clear)
	}
}

func FailImpl(t *testing.T, printables ...interface{}) {
	t.Helper()
	t.Fatal(colors.Red, printables, colors.Clear)
}

type LogHandler struct {
	mutex         *sync.Mutex
	t             *testing.T
	records       *[]slog.Record
	streamHandler slog.Handler
	streamLevel   slog.Level
}

func (h *LogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *LogHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.streamLevel {
		if err := h.streamHandler.Handle(ctx, record); err != nil {
			return err
		}
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	*h.records = append(*h.records, record)
	return nil
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.streamHandler = h.streamHandler.WithAttrs(attrs)
	return &clone
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.streamHandler = h.streamHandler.WithGroup(name)
	return &clone
}

func (h *LogHandler) WasLogged(pattern string) bool {
	re, err := regexp.Compile(pattern)
	RequireImpl(h.t, err)
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, record := range *h.records {
		if re.MatchString(record.Message) {
			return true
		}
	}
	return false
}

func newLogHandler(t *testing.T) *LogHandler {
	// every record is captured, -test_loglevel only limits what reaches stderr
	streamLevel := log.LevelTrace
	if *testflag.LogLevelFlag != "" {
		RequireImpl(t, streamLevel.UnmarshalText([]byte(*testflag.LogLevelFlag)), "parsing -test_loglevel")
	}
	return &LogHandler{
		mutex:         &sync.Mutex{},
		t:             t,
		records:       &[]slog.Record{},
		streamHandler: log.NewTerminalHandler(os.Stderr, false),
		streamLevel:   streamLevel,
	}
}

// InitTestLog installs a capturing handler as the default logger.
func InitTestLog(t *testing.T, level slog.Level) *LogHandler {
	handler := newLogHandler(t)
	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(level)
	log.SetDefault(log.NewLogger(glogger))
	return handler
}
