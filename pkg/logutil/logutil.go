// Copyright 2025 RowBridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig drives the global zap logger.  An empty Filename logs to
// stderr; otherwise output goes to a lumberjack-rotated file.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level"`
	// Format is console or json.
	Format string `toml:"format"`
	// Filename of the log file; empty logs to stderr.
	Filename string `toml:"filename"`
	// MaxSize is the size in MB a log file grows to before rotation.
	MaxSize int `toml:"max-size"`
	// MaxDays a rotated file is retained.
	MaxDays int `toml:"max-days"`
	// MaxBackups is the count of rotated files retained.
	MaxBackups int `toml:"max-backups"`
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	return zap.NewAtomicLevelAt(level)
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.Format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename != "" {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	}
	return zapcore.Lock(os.Stderr)
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{
		zap.AddStacktrace(zapcore.FatalLevel),
		zap.AddCaller(),
	}
}

var _globalLogger atomic.Pointer[zap.Logger]

func init() {
	cfg := &LogConfig{Level: "info", Format: "console"}
	_globalLogger.Store(cfg.build())
}

func (cfg *LogConfig) build() *zap.Logger {
	core := zapcore.NewCore(cfg.getEncoder(), cfg.getSyncer(), cfg.getLevel())
	return zap.New(core, cfg.getOptions()...)
}

// SetupLogger replaces the global logger from cfg.  Called once at process
// start; later calls replace the logger wholesale.
func SetupLogger(cfg *LogConfig) {
	_globalLogger.Store(cfg.build())
}

// GetGlobalLogger returns the process logger.  Always non-nil.
func GetGlobalLogger() *zap.Logger {
	return _globalLogger.Load()
}
