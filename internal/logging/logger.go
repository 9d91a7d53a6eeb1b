package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	Level      string
	FormatJSON bool
	// FileName, when set, sends logs to a rotated file instead of stderr.
	FileName string
}

// Setup configures the global logrus logger. Stdout is left to command output.
func Setup(params SetupParams) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: params.FileName == ""})
	}
	logrus.SetLevel(GetLevel(params.Level))
	logrus.SetOutput(Output(params.FileName))
}

// Output returns stderr, or a rotating writer for fileName.
func Output(fileName string) io.Writer {
	if fileName == "" {
		return os.Stderr
	}
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	return &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.WarnLevel
	}
}
