// Package logger provides the logging facility used by the library and the
// vboxctl CLI. It wraps zap with a small set of custom levels (SUCCESS, FAIL),
// colored console output and an optional rotated JSON log file.
//
// Typical use:
//
//	logger.Init(logger.DefaultOptions())
//	defer logger.SyncGlobal()
//	logger.Get().Infof("starting %s", name)
package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level defines the log level. Levels map onto zapcore levels; SuccessLevel
// and FailLevel are rendered distinctively by the console encoder.
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	// SuccessLevel marks completion of a user-visible operation.
	SuccessLevel
	WarnLevel
	ErrorLevel
	// FailLevel logs and then exits the process with status 1.
	FailLevel
)

// String returns a lowercase string representation of the Level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case SuccessLevel:
		return "success"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	case FailLevel:
		return "fail"
	default:
		return fmt.Sprintf("level(%d)", l)
	}
}

// CapitalString returns an uppercase string representation of the Level.
func (l Level) CapitalString() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case SuccessLevel:
		return "SUCCESS"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FailLevel:
		return "FAIL"
	default:
		return fmt.Sprintf("LEVEL(%d)", l)
	}
}

// ToZapLevel converts our Level to the zapcore.Level it is logged at.
func (l Level) ToZapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel, SuccessLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FailLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Options holds configuration for a Logger.
type Options struct {
	// ConsoleLevel sets the minimum level for console output.
	ConsoleLevel Level
	// FileLevel sets the minimum level for file output.
	FileLevel Level
	// LogFilePath is the target file when FileOutput is enabled.
	LogFilePath string
	// ConsoleOutput enables logging to stdout.
	ConsoleOutput bool
	// FileOutput enables logging to a rotated JSON file.
	FileOutput bool
	// ColorConsole enables ANSI colors on the console.
	ColorConsole bool
	// TimestampFormat is the layout for timestamps, default time.RFC3339.
	TimestampFormat string
	// MaxFileSizeMB and MaxBackups control rotation of the log file.
	MaxFileSizeMB int
	MaxBackups    int
}

// DefaultOptions returns the default configuration: INFO+ colored console,
// file output disabled.
func DefaultOptions() Options {
	return Options{
		ConsoleLevel:    InfoLevel,
		FileLevel:       DebugLevel,
		LogFilePath:     "vboxctl.log",
		ConsoleOutput:   true,
		FileOutput:      false,
		ColorConsole:    true,
		TimestampFormat: time.RFC3339,
		MaxFileSizeMB:   50,
		MaxBackups:      3,
	}
}

// Logger wraps zap.SugaredLogger with custom level handling.
type Logger struct {
	*zap.SugaredLogger
	opts Options
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Init initializes the global logger. Subsequent calls are no-ops. If
// initialization fails the global logger falls back to a basic stderr logger
// so that logging is always available.
func Init(opts Options) {
	once.Do(func() {
		var err error
		globalLogger, err = NewLogger(opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize logger: %v, falling back to stderr\n", err)
			cfg := zap.NewDevelopmentConfig()
			l, _ := cfg.Build(zap.AddCallerSkip(1))
			globalLogger = &Logger{SugaredLogger: l.Sugar(), opts: opts}
		}
	})
}

// Get returns the global logger, initializing it with DefaultOptions if Init
// was never called.
func Get() *Logger {
	if globalLogger == nil {
		Init(DefaultOptions())
	}
	return globalLogger
}

// SyncGlobal flushes buffered log entries of the global logger.
func SyncGlobal() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}

// NewLogger creates an independent Logger from opts.
func NewLogger(opts Options) (*Logger, error) {
	if opts.TimestampFormat == "" {
		opts.TimestampFormat = time.RFC3339
	}

	var cores []zapcore.Core

	if opts.ConsoleOutput {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(opts.TimestampFormat)
		encCfg.TimeKey = "time"
		// The console encoder renders the level prefix itself.
		encCfg.LevelKey = ""
		encCfg.MessageKey = "msg"

		var enc zapcore.Encoder
		if opts.ColorConsole {
			enc = NewColorConsoleEncoder(encCfg, opts)
		} else {
			enc = NewPlainConsoleEncoder(encCfg, opts)
		}

		enabler := consoleEnabler(opts.ConsoleLevel)
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stdout), enabler))
	}

	if opts.FileOutput {
		if opts.LogFilePath == "" {
			return nil, fmt.Errorf("log file path cannot be empty when file output is enabled")
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(opts.TimestampFormat)
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.LogFilePath,
			MaxSize:    opts.MaxFileSizeMB,
			MaxBackups: opts.MaxBackups,
		})
		enabler := consoleEnabler(opts.FileLevel)
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), fileWriter, enabler))
	}

	if len(cores) == 0 {
		return &Logger{SugaredLogger: zap.NewNop().Sugar(), opts: opts}, nil
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	return &Logger{SugaredLogger: zl.Sugar(), opts: opts}, nil
}

// consoleEnabler maps our Level thresholds to a zap LevelEnabler, keeping the
// custom levels visible at their underlying zap level.
func consoleEnabler(min Level) zap.LevelEnablerFunc {
	return func(lvl zapcore.Level) bool {
		if min == SuccessLevel {
			return lvl >= zapcore.InfoLevel
		}
		if min == FailLevel {
			return lvl >= zapcore.FatalLevel
		}
		return lvl >= min.ToZapLevel()
	}
}

// logWithLevel dispatches to the right zap method and attaches the
// "customlevel" field consumed by the console encoder.
func (l *Logger) logWithLevel(level Level, template string, args ...interface{}) {
	if l == nil || l.SugaredLogger == nil {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", level.CapitalString(), fmt.Sprintf(template, args...))
		if level == FailLevel {
			os.Exit(1)
		}
		return
	}

	msg := fmt.Sprintf(template, args...)
	field := zap.String("customlevel", level.CapitalString())
	log := l.SugaredLogger.WithOptions(zap.AddCallerSkip(1))

	switch level {
	case DebugLevel:
		log.Debugw(msg, field)
	case InfoLevel, SuccessLevel:
		log.Infow(msg, field)
	case WarnLevel:
		log.Warnw(msg, field)
	case ErrorLevel:
		log.Errorw(msg, field)
	case FailLevel:
		log.Fatalw(msg, field)
	default:
		log.Infow(msg, field)
	}
}

// Debugf logs at DebugLevel.
func (l *Logger) Debugf(template string, args ...interface{}) {
	l.logWithLevel(DebugLevel, template, args...)
}

// Infof logs at InfoLevel.
func (l *Logger) Infof(template string, args ...interface{}) {
	l.logWithLevel(InfoLevel, template, args...)
}

// Successf logs at SuccessLevel.
func (l *Logger) Successf(template string, args ...interface{}) {
	l.logWithLevel(SuccessLevel, template, args...)
}

// Warnf logs at WarnLevel.
func (l *Logger) Warnf(template string, args ...interface{}) {
	l.logWithLevel(WarnLevel, template, args...)
}

// Errorf logs at ErrorLevel.
func (l *Logger) Errorf(template string, args ...interface{}) {
	l.logWithLevel(ErrorLevel, template, args...)
}

// Failf logs at FailLevel and exits the process.
func (l *Logger) Failf(template string, args ...interface{}) {
	l.logWithLevel(FailLevel, template, args...)
}
