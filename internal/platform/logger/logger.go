// Package logger owns the process-wide zerolog logger and the request and
// run scoped children derived from a context
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"langid/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type used across the module
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string
	Format       string // "console" or "json"
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* variables
func FromEnv() Options {
	env := raw.New().Prefix("LOG_")
	return Options{
		Level:       env.Get("LEVEL", "debug"),
		Format:      strings.ToLower(env.Get("FORMAT", "console")),
		Service:     env.Get("SERVICE", "langid"),
		Component:   env.Get("COMPONENT", ""),
		WithCaller:  env.GetBool("CALLER", false),
		SampleEvery: env.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init builds the root logger. Only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		root.Store(build(opt))
	})
}

// Get returns the root logger, initialising it from the environment on
// first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

func build(opt Options) *Logger {
	out := opt.Writer
	if out == nil {
		out = os.Stdout
	}
	if opt.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	fields := map[string]string{"service": opt.Service, "component": opt.Component}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields["go_version"] = bi.GoVersion
	}
	for k, v := range opt.StaticFields {
		fields[k] = v
	}

	zc := zerolog.New(out).Level(parseLevel(opt.Level)).With().Timestamp()
	for k, v := range fields {
		if v != "" {
			zc = zc.Str(k, v)
		}
	}
	if opt.WithCaller {
		zc = zc.Caller()
	}

	l := zc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return &l
}

// parseLevel maps a level name to zerolog, defaulting to debug
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl == zerolog.NoLevel || lvl > zerolog.PanicLevel || lvl < zerolog.TraceLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

type ctxKey int

const (
	requestIDKey ctxKey = iota
	runIDKey
)

// scoped lists the context values copied onto child loggers by C
var scoped = []struct {
	key   ctxKey
	field string
}{
	{requestIDKey, "request_id"},
	{runIDKey, "run_id"},
}

// WithRequest stores a request id (HTTP) and a run id (CLI invocation) on
// ctx. Blank values are skipped
func WithRequest(ctx context.Context, reqID, runID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, requestIDKey, reqID)
	}
	if runID != "" {
		ctx = context.WithValue(ctx, runIDKey, runID)
	}
	return ctx
}

// RequestID returns the id stored by WithRequest, or ""
func RequestID(ctx context.Context) string {
	s, _ := ctx.Value(requestIDKey).(string)
	return s
}

// C returns a child of the root logger carrying the ids found on ctx
func C(ctx context.Context) *Logger {
	zc := Get().With()
	for _, s := range scoped {
		if v, ok := ctx.Value(s.key).(string); ok && v != "" {
			zc = zc.Str(s.field, v)
		}
	}
	l := zc.Logger()
	return &l
}

// Named returns a child logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
