package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// Configure applies level and format to the standard logrus logger, which
// is what For and the HTTP middleware write to.
func Configure(level, format string) *logrus.Logger {
	l := logrus.StandardLogger()
	apply(l, level, format, os.Stdout)
	return l
}

// New returns an independent logger writing to out.
func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	apply(l, level, format, out)
	return l
}

func apply(l *logrus.Logger, level, format string, out io.Writer) {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.SetOutput(out)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
		return
	}
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// For returns an entry on the standard logger tagged with the request id
// carried by ctx, if any.
func For(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if id := RequestIDFrom(ctx); id != "" {
		return entry.WithField("request_id", id)
	}
	return entry
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// Track logs msg with its elapsed time when the returned func is called.
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration_ms", dur.Milliseconds())
		if dur > 500*time.Millisecond {
			entry.Warnf("%s completed (slow)", msg)
			return
		}
		entry.Debugf("%s completed", msg)
	}
}
