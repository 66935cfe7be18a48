package logging

import (
	"io"
	"os"
	"strings"

	"github.com/tutostrucoscode/GymMetrics/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 20
	logFileMaxAgeDays = 30
)

// LoggerSetupParams drives Setup; Sentry fields are ignored unless SentryEnabled.
type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
	// 0 retains every rotated file
	MaxBackups int
}

// Setup configures the global logrus logger. Without a log file, logs go to stdout only.
func Setup(params LoggerSetupParams) {
	logrus.SetFormatter(newFormatter(params.LogFormatJSON))
	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	output, description := newOutput(params)
	logrus.SetOutput(output)
	logrus.Infof("logging set up: %s, level %s", description, logrus.GetLevel())
}

func newFormatter(json bool) logrus.Formatter {
	if json {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{
		FullTimestamp: true,
	}
}

func setupSentry(params LoggerSetupParams) {
	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		logrus.Errorf("sentry init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Debugf("sentry set up for environment [%s]", params.Environment)
}

// newOutput returns the writer for params and a short description of it.
func newOutput(params LoggerSetupParams) (io.Writer, string) {
	if params.LogFileName == "" {
		return os.Stdout, "stdout"
	}

	fileName := params.LogFileName
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	rotating := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    logFileMaxSizeMB,
		MaxAge:     logFileMaxAgeDays,
		MaxBackups: params.MaxBackups,
		Compress:   true,
		// rotated file names use UTC
		LocalTime: false,
	}

	if params.LogToStdout {
		return pkg.NewCombinedWriter(os.Stdout, rotating), "stdout and " + fileName
	}
	return rotating, fileName
}

// GetLevel parses level case-insensitively; unknown levels fall back to info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
