package logging

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	DebugContext(ctx context.Context, msg string, keysAndValues ...any)
	InfoContext(ctx context.Context, msg string, keysAndValues ...any)
	WarnContext(ctx context.Context, msg string, keysAndValues ...any)
	ErrorContext(ctx context.Context, msg string, keysAndValues ...any)

	Named(name string) Logger
	WithFields(keysAndValues ...any) Logger

	Sync() error
}

type Config struct {
	Level  string         `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string         `mapstructure:"format" validate:"omitempty,oneof=console json"`
	File   string         `mapstructure:"file"`
	Rotate RotationConfig `mapstructure:"rotate"`
}

type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb" validate:"gte=0"`
	MaxBackups int  `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int  `mapstructure:"max_age_days" validate:"gte=0"`
	Compress   bool `mapstructure:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Rotate: RotationConfig{MaxSizeMB: 100, MaxBackups: 5, MaxAgeDays: 14},
	}
}

var _ Logger = (*ZapLogger)(nil)

type ZapLogger struct {
	sugar *zap.SugaredLogger
}

func New(cfg Config) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(orDefault(cfg.Level, "info")))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	writers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.File != "" {
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.Rotate.MaxSizeMB,
			MaxBackups: cfg.Rotate.MaxBackups,
			MaxAge:     cfg.Rotate.MaxAgeDays,
			Compress:   cfg.Rotate.Compress,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), level)
	return &ZapLogger{sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()}, nil
}

// FromZap wraps an existing zap logger, mostly for tests with observers.
func FromZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *ZapLogger) Debug(msg string, kv ...any) { l.sugar.Debugw(msg, kv...) }
func (l *ZapLogger) Info(msg string, kv ...any)  { l.sugar.Infow(msg, kv...) }
func (l *ZapLogger) Warn(msg string, kv ...any)  { l.sugar.Warnw(msg, kv...) }
func (l *ZapLogger) Error(msg string, kv ...any) { l.sugar.Errorw(msg, kv...) }

func (l *ZapLogger) DebugContext(ctx context.Context, msg string, kv ...any) {
	l.sugar.Debugw(msg, withContextFields(ctx, kv)...)
}

func (l *ZapLogger) InfoContext(ctx context.Context, msg string, kv ...any) {
	l.sugar.Infow(msg, withContextFields(ctx, kv)...)
}

func (l *ZapLogger) WarnContext(ctx context.Context, msg string, kv ...any) {
	l.sugar.Warnw(msg, withContextFields(ctx, kv)...)
}

func (l *ZapLogger) ErrorContext(ctx context.Context, msg string, kv ...any) {
	l.sugar.Errorw(msg, withContextFields(ctx, kv)...)
}

func (l *ZapLogger) Named(name string) Logger {
	return &ZapLogger{sugar: l.sugar.Named(name)}
}

func (l *ZapLogger) WithFields(kv ...any) Logger {
	return &ZapLogger{sugar: l.sugar.With(kv...)}
}

func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
