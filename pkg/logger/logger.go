package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var once sync.Once

var logger *zap.SugaredLogger

// Get initializes a zap.SugaredLogger instance if it has not been initialized
// already and returns the same instance for subsequent calls.
//
// Output is JSON when JSON_LOG is set or when stdout is not a terminal.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		stdout := zapcore.AddSync(os.Stdout)

		level := zap.InfoLevel
		levelEnv := os.Getenv("LOG_LEVEL")
		if levelEnv != "" {
			levelFromEnv, err := zapcore.ParseLevel(levelEnv)
			if err != nil {
				log.Println(
					fmt.Errorf("invalid level, defaulting to INFO: %w", err),
				)
			} else {
				level = levelFromEnv
			}
		}

		encoder := newEncoder(os.Getenv("JSON_LOG") != "" || !isTerminal(os.Stdout))
		core := zapcore.NewCore(encoder, stdout, zap.NewAtomicLevelAt(level))

		buildInfo, ok := debug.ReadBuildInfo()
		if ok {
			fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
			for _, v := range buildInfo.Settings {
				if v.Key == "vcs.revision" && len(v.Value) >= 7 {
					fields = append(fields, zap.String("git_revision", v.Value[0:7]))
					break
				}
			}

			core = core.With(fields)
		}

		logger = zap.New(core).Sugar()
	})

	return logger
}

func newEncoder(json bool) zapcore.Encoder {
	if json {
		productionCfg := zap.NewProductionEncoderConfig()
		productionCfg.TimeKey = "timestamp"
		productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(productionCfg)
	}

	developmentCfg := zap.NewDevelopmentEncoderConfig()
	developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(developmentCfg)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned.
// Any key/value pairs in with are attached to the returned logger.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger)
	if !ok || l == nil {
		l = Get()
	}

	if len(with) == 0 {
		return l
	}

	return l.With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
