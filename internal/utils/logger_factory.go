package utils

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logLevelDebugNameConstant            = "debug"
	logLevelInfoNameConstant             = "info"
	logLevelWarnNameConstant             = "warn"
	logLevelErrorNameConstant            = "error"
	logFormatStructuredNameConstant      = "structured"
	logFormatConsoleNameConstant         = "console"
	structuredZapEncodingConstant        = "json"
	consoleZapEncodingConstant           = "console"
	unsupportedLogLevelTemplateConstant  = "unsupported log level: %s"
	unsupportedLogFormatTemplateConstant = "unsupported log format: %s"
)

// LogLevel enumerates supported logging granularities.
type LogLevel string

// Supported log levels.
const (
	LogLevelDebug LogLevel = LogLevel(logLevelDebugNameConstant)
	LogLevelInfo  LogLevel = LogLevel(logLevelInfoNameConstant)
	LogLevelWarn  LogLevel = LogLevel(logLevelWarnNameConstant)
	LogLevelError LogLevel = LogLevel(logLevelErrorNameConstant)
)

// LogFormat enumerates supported logger output encodings.
type LogFormat string

// Supported log formats.
const (
	LogFormatStructured LogFormat = LogFormat(logFormatStructuredNameConstant)
	LogFormatConsole    LogFormat = LogFormat(logFormatConsoleNameConstant)
)

var logLevelMapping = map[LogLevel]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

var logFormatEncodingMapping = map[LogFormat]string{
	LogFormatStructured: structuredZapEncodingConstant,
	LogFormatConsole:    consoleZapEncodingConstant,
}

// LoggerFactory builds zap.Logger instances with consistent configuration.
type LoggerFactory struct{}

// NewLoggerFactory constructs a new logger factory.
func NewLoggerFactory() *LoggerFactory {
	return &LoggerFactory{}
}

// CreateLogger produces a zap.Logger honoring the requested log level and format.
// Console loggers skip stack traces so diagnostics stay readable on a terminal.
func (factory *LoggerFactory) CreateLogger(requestedLogLevel LogLevel, requestedLogFormat LogFormat) (*zap.Logger, error) {
	mappedLevel, levelSupported := logLevelMapping[requestedLogLevel]
	if !levelSupported {
		return nil, fmt.Errorf(unsupportedLogLevelTemplateConstant, requestedLogLevel)
	}

	encoding, formatSupported := logFormatEncodingMapping[requestedLogFormat]
	if !formatSupported {
		return nil, fmt.Errorf(unsupportedLogFormatTemplateConstant, requestedLogFormat)
	}

	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Level = zap.NewAtomicLevelAt(mappedLevel)
	loggerConfiguration.Encoding = encoding
	if requestedLogFormat == LogFormatConsole {
		loggerConfiguration.DisableStacktrace = true
		loggerConfiguration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return loggerConfiguration.Build()
}
