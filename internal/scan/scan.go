// Package scan orchestrates a compliance run end to end: loading the
// project, fanning file scans out over the worker pool, classifying
// the results into a report.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/reuselint/reuselint/internal/project"
	"github.com/reuselint/reuselint/internal/report"
	"github.com/reuselint/reuselint/internal/vcs"
	"github.com/reuselint/reuselint/pkg/telemetry"
	"github.com/reuselint/reuselint/pkg/version"
)

// Config holds scanner settings.
type Config struct {
	Root        string
	Subset      []string // restrict the scan to these root-relative paths
	LicensesDir string
	Jobs        int
	Verbose     bool
	JSONLogs    bool

	IncludeSubmodules       bool
	IncludeMesonSubprojects bool
	SuppressDeprecation     bool

	// VCS overrides detection, mainly for tests.
	VCS vcs.Strategy

	// Telemetry config.
	OtelEndpoint  string
	SkipTelemetry bool

	Logger *slog.Logger
}

// Scanner is the runtime core.
type Scanner struct {
	Logger *slog.Logger
	Tracer trace.Tracer

	config   Config
	shutdown func(context.Context) error
}

// Option is a functional configuration override.
type Option func(*Scanner)

// New initializes the Scanner.
func New(ctx context.Context, opts ...Option) (*Scanner, error) {
	s := &Scanner{Tracer: otel.Tracer("reuselint/scan")}
	for _, opt := range opts {
		opt(s)
	}
	if s.config.Root == "" {
		s.config.Root = "."
	}
	if s.Logger == nil {
		s.Logger = newLogger(s.config)
	}
	slog.SetDefault(s.Logger)

	if !s.config.SkipTelemetry {
		shutdown, err := telemetry.Init(ctx, version.AppName, version.Current, s.config.OtelEndpoint)
		if err != nil {
			s.Logger.Warn("telemetry unavailable", "error", err)
		} else {
			s.shutdown = shutdown
		}
	}
	return s, nil
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		s.Logger = l
	}
}

// WithJobs caps the scan fan-out.
func WithJobs(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.config.Jobs = n
		}
	}
}

// WithConfig sets raw config.
func WithConfig(cfg Config) Option {
	return func(s *Scanner) {
		s.config = cfg
		if cfg.Logger != nil {
			s.Logger = cfg.Logger
		}
	}
}

// Run loads the project and produces its compliance report.
func (s *Scanner) Run(ctx context.Context) (rep *report.ProjectReport, proj *project.Project, err error) {
	ctx, span := s.Tracer.Start(ctx, "Scanner.Run")
	defer span.End()

	// Crash safety.
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			span.RecordError(fmt.Errorf("%v", r), trace.WithStackTrace(true))
			span.SetStatus(codes.Error, "scan panicked")
			s.Logger.Error("scan panicked", "error", r, "stack", string(stack))
			err = fmt.Errorf("scan panicked: %v", r)
		}
	}()

	s.Logger.Info("starting scan", "root", s.config.Root, "jobs", s.config.Jobs)

	proj, err = project.Load(ctx, s.config.Root, project.Config{
		LicensesDir:             s.config.LicensesDir,
		Subset:                  s.config.Subset,
		VCS:                     s.config.VCS,
		IncludeSubmodules:       s.config.IncludeSubmodules,
		IncludeMesonSubprojects: s.config.IncludeMesonSubprojects,
		SuppressDeprecation:     s.config.SuppressDeprecation,
	})
	if err != nil {
		span.SetStatus(codes.Error, "project load failed")
		return nil, nil, err
	}
	for _, w := range proj.Warnings {
		s.Logger.Warn(w)
	}

	rep = report.Generate(ctx, proj, report.Options{Jobs: s.config.Jobs})

	span.SetAttributes(
		attribute.Int("scan.files", rep.TotalFiles()),
		attribute.Int("scan.read_errors", len(rep.ReadErrors)),
		attribute.Bool("scan.compliant", rep.Compliant()),
	)
	s.Logger.Info("scan finished", "files", rep.TotalFiles(), "compliant", rep.Compliant())
	return rep, proj, nil
}

// Close flushes telemetry. Safe to call when Init failed or was
// skipped.
func (s *Scanner) Close(ctx context.Context) error {
	if s.shutdown == nil {
		return nil
	}
	return s.shutdown(ctx)
}

// newLogger builds the default logger. Reports go to stdout, so logs
// keep to stderr, and only warnings pass unless Verbose raises the
// level.
func newLogger(cfg Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.JSONLogs {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
