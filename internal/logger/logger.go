// Copyright 2026 The memvfs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger is the filesystem's structured logging facade: a
// slog.Logger wrapping a custom TRACE/DEBUG/INFO/WARNING/ERROR/OFF
// severity scale, in text or JSON form, optionally rotated to disk via
// lumberjack. Setup (which sink to attach, whether to rotate) is left to
// the embedder; this package only exposes the logging calls the vfs
// package makes for filesystem lifecycle events (start-up, close, teardown).
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Severity is the logger's level scale, ordered low to high so filtering
// compares numerically like slog's own levels.
type Severity string

const (
	OFF     Severity = "OFF"
	TRACE   Severity = "TRACE"
	DEBUG   Severity = "DEBUG"
	INFO    Severity = "INFO"
	WARNING Severity = "WARNING"
	ERROR   Severity = "ERROR"
)

// slog doesn't define TRACE; place it one step below slog.LevelDebug.
const levelTrace = slog.Level(-8)

func slogLevel(s Severity) slog.Level {
	switch s {
	case TRACE:
		return levelTrace
	case DEBUG:
		return slog.LevelDebug
	case INFO:
		return slog.LevelInfo
	case WARNING:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	case OFF:
		return slog.Level(math_MaxInt)
	default:
		return slog.LevelInfo
	}
}

// math_MaxInt avoids importing math solely for one constant; any
// sufficiently high level value disables every Log call.
const math_MaxInt = 1 << 30

// Rotation configures lumberjack-based log-file rotation. A zero value
// (MaxSizeMB == 0) means no rotation is applied even if a file path is
// given — the file is just appended to directly.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type factory struct {
	format string // "text" or "json"
	level  *slog.LevelVar
}

func (f *factory) handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: f.level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				lvl := a.Value.Any().(slog.Level)
				a.Key = "severity"
				a.Value = slog.StringValue(severityName(lvl))
			}
			return a
		},
	}
	if f.format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func severityName(lvl slog.Level) string {
	switch {
	case lvl <= levelTrace:
		return string(TRACE)
	case lvl <= slog.LevelDebug:
		return string(DEBUG)
	case lvl <= slog.LevelInfo:
		return string(INFO)
	case lvl <= slog.LevelWarn:
		return string(WARNING)
	default:
		return string(ERROR)
	}
}

var (
	defaultLevel   = &slog.LevelVar{}
	defaultFactory = &factory{format: "text", level: defaultLevel}
	defaultLogger  = slog.New(defaultFactory.handler(os.Stderr))
)

// Configure replaces the default logger's sink and format. filePath, if
// non-empty, directs output to a file instead of stderr; rotation, if
// MaxSizeMB > 0, wraps that file with lumberjack.
func Configure(format string, level Severity, filePath string, rotation Rotation) error {
	defaultFactory.format = format
	defaultLevel.Set(slogLevel(level))

	var w io.Writer = os.Stderr
	if filePath != "" {
		if rotation.MaxSizeMB > 0 {
			w = &lumberjack.Logger{
				Filename:   filePath,
				MaxSize:    rotation.MaxSizeMB,
				MaxBackups: rotation.MaxBackups,
				MaxAge:     rotation.MaxAgeDays,
				Compress:   rotation.Compress,
			}
		} else {
			f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
			w = f
		}
	}
	defaultLogger = slog.New(defaultFactory.handler(w))
	return nil
}

func log(lvl slog.Level, format string, args ...any) {
	defaultLogger.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}

func Tracef(format string, args ...any) { log(levelTrace, format, args...) }
func Debugf(format string, args ...any) { log(slog.LevelDebug, format, args...) }
func Infof(format string, args ...any)  { log(slog.LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { log(slog.LevelWarn, format, args...) }
func Errorf(format string, args ...any) { log(slog.LevelError, format, args...) }
