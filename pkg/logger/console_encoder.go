package logger

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
	colorReset  = "\x1b[0m"
)

var _bufferPool = buffer.NewPool()

// consoleEncoder renders entries as "<time> [LEVEL] message", honoring the
// custom levels carried in the "customlevel" field.
type consoleEncoder struct {
	zapcore.EncoderConfig
	colors       bool
	opts         Options
	levelStrings map[Level]string
}

// NewColorConsoleEncoder creates a console encoder with ANSI colors.
func NewColorConsoleEncoder(cfg zapcore.EncoderConfig, opts Options) zapcore.Encoder {
	return &consoleEncoder{
		EncoderConfig: cfg,
		colors:        true,
		opts:          opts,
		levelStrings:  cacheLevelStrings(true),
	}
}

// NewPlainConsoleEncoder creates a console encoder without colors.
func NewPlainConsoleEncoder(cfg zapcore.EncoderConfig, opts Options) zapcore.Encoder {
	return &consoleEncoder{
		EncoderConfig: cfg,
		colors:        false,
		opts:          opts,
		levelStrings:  cacheLevelStrings(false),
	}
}

func levelColor(l Level, s string) string {
	switch l {
	case DebugLevel:
		return colorCyan + s + colorReset
	case SuccessLevel:
		return colorGreen + s + colorReset
	case WarnLevel:
		return colorYellow + s + colorReset
	case ErrorLevel, FailLevel:
		return colorRed + s + colorReset
	default:
		return s
	}
}

func cacheLevelStrings(color bool) map[Level]string {
	m := make(map[Level]string)
	for _, l := range []Level{DebugLevel, InfoLevel, SuccessLevel, WarnLevel, ErrorLevel, FailLevel} {
		str := fmt.Sprintf("[%s]", l.CapitalString())
		if color {
			str = levelColor(l, str)
		}
		m[l] = str
	}
	return m
}

// Clone clones the encoder.
func (enc *consoleEncoder) Clone() zapcore.Encoder {
	return &consoleEncoder{
		EncoderConfig: enc.EncoderConfig,
		colors:        enc.colors,
		opts:          enc.opts,
		levelStrings:  enc.levelStrings,
	}
}

// EncodeEntry renders one log entry.
func (enc *consoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := _bufferPool.Get()

	if enc.TimeKey != "" {
		line.AppendString(ent.Time.Format(enc.opts.TimestampFormat))
		line.AppendString(" ")
	}

	level := InfoLevel
	for _, f := range fields {
		if f.Key == "customlevel" && f.Type == zapcore.StringType {
			switch strings.ToUpper(f.String) {
			case "DEBUG":
				level = DebugLevel
			case "SUCCESS":
				level = SuccessLevel
			case "WARN":
				level = WarnLevel
			case "ERROR":
				level = ErrorLevel
			case "FAIL":
				level = FailLevel
			}
			break
		}
	}
	line.AppendString(enc.levelStrings[level])
	line.AppendString(" ")

	line.AppendString(ent.Message)

	for _, f := range fields {
		if f.Key == "customlevel" {
			continue
		}
		switch f.Type {
		case zapcore.StringType:
			line.AppendString(fmt.Sprintf(" %s=%s", f.Key, f.String))
		case zapcore.Int64Type, zapcore.Int32Type:
			line.AppendString(fmt.Sprintf(" %s=%d", f.Key, f.Integer))
		case zapcore.BoolType:
			line.AppendString(fmt.Sprintf(" %s=%v", f.Key, f.Integer == 1))
		case zapcore.ErrorType:
			if err, ok := f.Interface.(error); ok {
				line.AppendString(fmt.Sprintf(" error=%s", err.Error()))
			}
		}
	}

	line.AppendString("\n")
	return line, nil
}

// The field-adding methods are unused by this line-oriented encoder; fields
// are rendered in EncodeEntry.
func (enc *consoleEncoder) OpenNamespace(key string)                                   {}
func (enc *consoleEncoder) AddArray(key string, arr zapcore.ArrayMarshaler) error      { return nil }
func (enc *consoleEncoder) AddObject(key string, obj zapcore.ObjectMarshaler) error    { return nil }
func (enc *consoleEncoder) AddBinary(key string, val []byte)                           {}
func (enc *consoleEncoder) AddByteString(key string, val []byte)                       {}
func (enc *consoleEncoder) AddBool(key string, val bool)                               {}
func (enc *consoleEncoder) AddComplex128(key string, val complex128)                   {}
func (enc *consoleEncoder) AddComplex64(key string, val complex64)                     {}
func (enc *consoleEncoder) AddDuration(key string, val time.Duration)                  {}
func (enc *consoleEncoder) AddFloat64(key string, val float64)                         {}
func (enc *consoleEncoder) AddFloat32(key string, val float32)                         {}
func (enc *consoleEncoder) AddInt(key string, val int)                                 {}
func (enc *consoleEncoder) AddInt64(key string, val int64)                             {}
func (enc *consoleEncoder) AddInt32(key string, val int32)                             {}
func (enc *consoleEncoder) AddInt16(key string, val int16)                             {}
func (enc *consoleEncoder) AddInt8(key string, val int8)                               {}
func (enc *consoleEncoder) AddString(key, val string)                                  {}
func (enc *consoleEncoder) AddTime(key string, val time.Time)                          {}
func (enc *consoleEncoder) AddUint(key string, val uint)                               {}
func (enc *consoleEncoder) AddUint64(key string, val uint64)                           {}
func (enc *consoleEncoder) AddUint32(key string, val uint32)                           {}
func (enc *consoleEncoder) AddUint16(key string, val uint16)                           {}
func (enc *consoleEncoder) AddUint8(key string, val uint8)                             {}
func (enc *consoleEncoder) AddUintptr(key string, val uintptr)                         {}
func (enc *consoleEncoder) AddReflected(key string, obj interface{}) error             { return nil }
