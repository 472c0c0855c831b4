// Package zappretty provides a colored, human-oriented zap encoder for command
// line programs. It decorates zap's console encoder: the timestamp, level,
// logger name, caller and message are colorized, and fields are rendered the
// way the console encoder renders them.
package zappretty

import (
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	encoderName = "cli"
	timeFormat  = "2006-01-02 15:04:05 MST"
)

var levelColor = map[zapcore.Level]color.Attribute{
	zapcore.DebugLevel:  color.FgBlue,
	zapcore.InfoLevel:   color.FgGreen,
	zapcore.WarnLevel:   color.FgYellow,
	zapcore.ErrorLevel:  color.FgRed,
	zapcore.DPanicLevel: color.FgRed,
	zapcore.PanicLevel:  color.FgRed,
	zapcore.FatalLevel:  color.FgRed,
}

// Register makes the encoder available to zap.Config under the name "cli".
// It may only be called once per process.
func Register(cfg zapcore.EncoderConfig) error {
	return zap.RegisterEncoder(encoderName, func(_ zapcore.EncoderConfig) (zapcore.Encoder, error) {
		return NewCLIEncoder(cfg), nil
	})
}

type cliEncoder struct {
	zapcore.Encoder
}

// NewCLIEncoder returns a console encoder whose entry metadata is colorized.
// Encoders left unset in cfg are replaced by colored ones.
func NewCLIEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if cfg.EncodeTime == nil {
		cfg.EncodeTime = encodeTime
	}

	if cfg.EncodeLevel == nil {
		cfg.EncodeLevel = encodeLevel
	}

	if cfg.EncodeName == nil {
		cfg.EncodeName = encodeName
	}

	if cfg.EncodeCaller == nil {
		cfg.EncodeCaller = encodeCaller
	}

	if cfg.EncodeDuration == nil {
		cfg.EncodeDuration = zapcore.StringDurationEncoder
	}

	return &cliEncoder{
		Encoder: zapcore.NewConsoleEncoder(cfg),
	}
}

// NewEncoderConfig returns an encoder config suited to NewCLIEncoder: no
// stack traces and the colored encoders for every metadata field.
func NewEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     encodeTime,
		EncodeLevel:    encodeLevel,
		EncodeName:     encodeName,
		EncodeCaller:   encodeCaller,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// NewLogger builds a logger named name that writes colored entries at level
// and above to w.
func NewLogger(name string, w io.Writer, level zapcore.LevelEnabler) *zap.Logger {
	core := zapcore.NewCore(NewCLIEncoder(NewEncoderConfig()), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core).Named(name)
}

func (enc *cliEncoder) Clone() zapcore.Encoder {
	return &cliEncoder{
		Encoder: enc.Encoder.Clone(),
	}
}

func (enc *cliEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	entry.Message = color.New(color.FgHiWhite).Sprint(entry.Message)
	return enc.Encoder.EncodeEntry(entry, fields)
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgWhite).Sprintf("[%s]", t.Format(timeFormat)))
}

// encodeLevel pads INFO so it lines up with the five letter levels.
func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	s := level.CapitalString()
	if level == zapcore.InfoLevel {
		s += " "
	}

	enc.AppendString(color.New(levelColor[level]).Sprint(s))
}

func encodeName(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgHiBlack).Sprint(name))
}

func encodeCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgHiBlack).Sprintf("(%s)", caller.TrimmedPath()))
}
