package bart

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"gobart/internal/models"
	"gobart/pkg/config"
)

// Recorder receives one record per finished call.
type Recorder interface {
	Record(ctx context.Context, inv models.Invocation) error
}

// Option customises a Client.
type Option func(*Client)

// WithRunner replaces the process runner, mostly for tests.
func WithRunner(r Runner) Option {
	return func(c *Client) { c.runner = r }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

func WithMeter(m metric.Meter) Option {
	return func(c *Client) { c.meter = m }
}

// WithRecorder stores a record of every call, e.g. in the history database.
func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// Client runs toolbox commands. It is safe for concurrent use; every call
// works in its own workspace.
type Client struct {
	exe      string
	tempDir  string
	keepTemp bool
	timeout  time.Duration

	runner   Runner
	logger   zerolog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	metrics  *instruments
	recorder Recorder

	debug atomic.Bool
}

// NewClient creates a client from cfg. A nil cfg loads defaults and the
// environment, so a bare TOOLBOX_PATH is enough.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		var err error
		cfg, err = config.LoadConfig("")
		if err != nil {
			return nil, err
		}
	}
	exe, err := cfg.Executable()
	if err != nil {
		return nil, err
	}

	c := &Client{
		exe:      exe,
		tempDir:  cfg.Run.TempDir,
		keepTemp: cfg.Run.KeepTemp,
		timeout:  cfg.Run.Timeout,
		runner:   ExecRunner{},
		logger:   log.Logger,
		tracer:   otel.Tracer(instrumentationName),
		meter:    otel.Meter(instrumentationName),
	}
	c.debug.Store(cfg.Run.Debug)
	for _, opt := range opts {
		opt(c)
	}

	c.metrics, err = newInstruments(c.meter)
	if err != nil {
		return nil, fmt.Errorf("bart: create instruments: %w", err)
	}
	return c, nil
}

// SetDebug toggles logging of every command line before it runs.
func (c *Client) SetDebug(on bool) {
	c.debug.Store(on)
}

func (c *Client) Debug() bool {
	return c.debug.Load()
}

// Executable returns the resolved toolbox executable.
func (c *Client) Executable() string {
	return c.exe
}

// Command builds the command line for tool without running it or touching
// the filesystem. Paths point into a workspace that is never created.
func (c *Client) Command(toolName string, args Args) (*Invocation, error) {
	tool, ok := Lookup(toolName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, toolName)
	}
	id := uuid.NewString()
	return build(c.exe, tool, args, id, newPlaceholder(c.tempDir, id))
}

// Run executes tool with args and returns its outputs. A non-zero exit
// status is reported as *ToolError. The workspace is removed on every path
// out of Run unless the configuration keeps it.
func (c *Client) Run(ctx context.Context, toolName string, args Args) (res *Result, err error) {
	tool, ok := Lookup(toolName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, toolName)
	}

	id := uuid.NewString()
	start := time.Now()
	rec := models.Invocation{ID: id, Tool: tool.Name, ExitCode: -1, StartedAt: start}
	logger := c.logger.With().Str("invocation_id", id).Str("tool", tool.Name).Logger()

	ctx, span := c.startSpan(ctx, tool.Name, id)
	defer func() {
		rec.Duration = time.Since(start)
		if err != nil {
			rec.Error = err.Error()
			logger.Warn().Err(err).Int("exit_code", rec.ExitCode).Dur("duration", rec.Duration).Msg("invocation failed")
		} else {
			logger.Debug().Int("exit_code", rec.ExitCode).Dur("duration", rec.Duration).Msg("invocation finished")
		}
		c.observe(ctx, span, tool.Name, rec.ExitCode, rec.Duration, err)
		c.record(ctx, logger, rec)
	}()

	ws, err := NewWorkspace(c.tempDir, id, c.keepTemp)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := ws.Close(); cerr != nil {
			logger.Warn().Err(cerr).Str("dir", ws.Dir).Msg("workspace cleanup failed")
		}
	}()

	inv, err := build(c.exe, tool, args, id, ws)
	if err != nil {
		return nil, err
	}
	rec.Argv = inv.Argv

	logger.Debug().Msg("invocation start")
	if c.debug.Load() {
		logger.Log().Str("command", inv.String()).Msg("bart command")
	}

	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	stdout, stderr, code, err := c.runner.Run(runCtx, inv.Argv[0], inv.Argv[1:])
	rec.ExitCode = code
	rec.Stderr = string(stderr)
	if err != nil {
		return nil, fmt.Errorf("bart %s: %w", tool.Name, err)
	}
	if code != 0 {
		return nil, &ToolError{Tool: tool.Name, ExitCode: code, Stderr: string(stderr)}
	}

	res = &Result{Invocation: inv, Stdout: stdout}
	for _, f := range inv.Outputs {
		a, rerr := ws.ReadOutput(f)
		if rerr != nil {
			return nil, fmt.Errorf("bart %s: %w", tool.Name, rerr)
		}
		res.names = append(res.names, f.Name)
		res.outputs = append(res.outputs, a)
	}
	return res, nil
}

func (c *Client) record(ctx context.Context, logger zerolog.Logger, rec models.Invocation) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.Record(context.WithoutCancel(ctx), rec); err != nil {
		logger.Warn().Err(err).Msg("history record failed")
	}
}
