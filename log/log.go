// Package log writes diagnostics to a daily file under where.Logs.
//
// Nothing is written unless logs.write is enabled, so calls are safe to leave
// on hot paths such as the trailer resolver.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Setup opens today's log file and applies the configured format and level.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Enabled reports whether log output is being written.
func Enabled() bool {
	return enabled
}

// Fields is an alias so callers do not need to import logrus.
type Fields = logrus.Fields

// Scope is a logger carrying a fixed set of fields, usually the component name.
type Scope struct {
	fields Fields
}

// For returns a Scope tagged with the given component.
func For(component string) Scope {
	return Scope{fields: Fields{"component": component}}
}

// With returns a copy of s with extra fields.
func (s Scope) With(fields Fields) Scope {
	merged := make(Fields, len(s.fields)+len(fields))
	for k, v := range s.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return Scope{fields: merged}
}

func (s Scope) entry() *logrus.Entry {
	return logrus.WithFields(s.fields)
}

func (s Scope) Debugf(format string, args ...any) {
	if enabled {
		s.entry().Debugf(format, args...)
	}
}

func (s Scope) Infof(format string, args ...any) {
	if enabled {
		s.entry().Infof(format, args...)
	}
}

func (s Scope) Warnf(format string, args ...any) {
	if enabled {
		s.entry().Warnf(format, args...)
	}
}

func (s Scope) Errorf(format string, args ...any) {
	if enabled {
		s.entry().Errorf(format, args...)
	}
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
