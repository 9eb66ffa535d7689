package bart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"gobart/internal/models"
	"gobart/pkg/cfl"
	"gobart/pkg/config"
)

func TestNewClientRequiresToolbox(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := NewClient(cfg)
	if !errors.Is(err, config.ErrToolboxNotConfigured) {
		t.Errorf("Expected ErrToolboxNotConfigured, got %v", err)
	}
}

func TestNewClientFromEnvironment(t *testing.T) {
	t.Setenv("TOOLBOX_PATH", "/opt/bart")
	c, err := NewClient(nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.Executable() != "/opt/bart/bart" {
		t.Errorf("Expected /opt/bart/bart, got %s", c.Executable())
	}
}

// TestRunOnes verifies the full path from arguments to output array
func TestRunOnes(t *testing.T) {
	runner := &fakeRunner{handle: simulate}
	c, cfg := newTestClient(t, runner)

	res, err := c.Run(context.Background(), "ones", Args{"dims": 2, "sizes": []int{4, 4}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	call := runner.lastCall()
	if call[0] != "/opt/bart/bart" || call[1] != "ones" {
		t.Errorf("Unexpected call %v", call)
	}
	if got := strings.Join(call[2:5], " "); got != "2 4 4" {
		t.Errorf("Expected '2 4 4', got %q", got)
	}
	if !strings.HasPrefix(call[5], cfg.Run.TempDir) {
		t.Errorf("Expected output inside %s, got %s", cfg.Run.TempDir, call[5])
	}

	a := res.First()
	if a == nil {
		t.Fatal("Expected an output array")
	}
	if len(a.Dims) != 2 || a.Dims[0] != 4 || a.Dims[1] != 4 {
		t.Errorf("Expected 4x4, got %v", a.Dims)
	}
	for i, v := range a.Data {
		if v != 1 {
			t.Fatalf("Expected 1 at %d, got %v", i, v)
		}
	}
	if res.Output("output") != a {
		t.Error("Expected Output(\"output\") to match First()")
	}

	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestRunRoundTripsInput(t *testing.T) {
	runner := &fakeRunner{handle: simulate}
	c, cfg := newTestClient(t, runner)

	in := cfl.New(3, 2)
	for i := range in.Data {
		in.Data[i] = complex(float32(i), float32(-i))
	}
	res, err := c.Run(context.Background(), "conj", Args{"input": in})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.First().Equal(in) {
		t.Error("Expected the fake tool to echo the input")
	}
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestUnknownTool(t *testing.T) {
	c, _ := newTestClient(t, &fakeRunner{})
	if _, err := c.Run(context.Background(), "nope", nil); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Expected ErrUnknownTool, got %v", err)
	}
	if _, err := c.Command("nope", nil); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Expected ErrUnknownTool, got %v", err)
	}
}

// TestToolFailure verifies exit status and stderr reach the caller
func TestToolFailure(t *testing.T) {
	runner := &fakeRunner{handle: func(context.Context, []string) (string, string, int, error) {
		return "", "ERROR: dimension mismatch\n", 2, nil
	}}
	c, cfg := newTestClient(t, runner)

	_, err := c.Run(context.Background(), "fft", Args{"bitmask": 1, "input": cfl.New(2)})
	if !errors.Is(err, ErrToolFailed) {
		t.Fatalf("Expected ErrToolFailed, got %v", err)
	}
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("Expected *ToolError, got %T", err)
	}
	if te.ExitCode != 2 || te.Tool != "fft" {
		t.Errorf("Unexpected tool error %+v", te)
	}
	if !strings.Contains(te.Stderr, "dimension mismatch") {
		t.Errorf("Expected stderr to be captured, got %q", te.Stderr)
	}
	if err.Error() != "bart fft: exit status 2: ERROR: dimension mismatch" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestMissingOutput(t *testing.T) {
	c, cfg := newTestClient(t, &fakeRunner{})
	_, err := c.Run(context.Background(), "zeros", Args{"dims": 1, "sizes": []int{3}})
	if !errors.Is(err, ErrMissingOutput) {
		t.Errorf("Expected ErrMissingOutput, got %v", err)
	}
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestOptionalOutputMissing(t *testing.T) {
	c, _ := newTestClient(t, &fakeRunner{handle: simulate})
	res, err := c.Run(context.Background(), "ecalib", Args{"kspace": cfl.New(2, 2)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	outs := res.Outputs()
	if len(outs) != 2 {
		t.Fatalf("Expected 2 outputs, got %d", len(outs))
	}
	if outs[0] == nil || outs[1] != nil {
		t.Errorf("Expected sensitivities set and ev_maps nil, got %v", outs)
	}
}

func TestRunBuildErrorCleansUp(t *testing.T) {
	runner := &fakeRunner{}
	c, cfg := newTestClient(t, runner)
	_, err := c.Run(context.Background(), "fft", Args{"input": cfl.New(2)})
	if !errors.Is(err, ErrMissingParam) {
		t.Errorf("Expected ErrMissingParam, got %v", err)
	}
	if len(runner.calls) != 0 {
		t.Error("Expected the tool not to run")
	}
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestTimeout(t *testing.T) {
	runner := &fakeRunner{handle: func(ctx context.Context, _ []string) (string, string, int, error) {
		<-ctx.Done()
		return "", "", -1, ctx.Err()
	}}
	cfg := testConfig(t)
	cfg.Run.Timeout = 20 * time.Millisecond
	c, err := NewClient(cfg, WithRunner(runner))
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.Run(context.Background(), "version", nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestCancelledContext(t *testing.T) {
	runner := &fakeRunner{handle: func(ctx context.Context, _ []string) (string, string, int, error) {
		return "", "", -1, ctx.Err()
	}}
	c, cfg := newTestClient(t, runner)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Run(ctx, "version", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestPanicCleansUp(t *testing.T) {
	runner := &fakeRunner{handle: func(context.Context, []string) (string, string, int, error) {
		panic("runner exploded")
	}}
	c, cfg := newTestClient(t, runner)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic to propagate")
			}
		}()
		_, _ = c.Run(context.Background(), "version", nil)
	}()
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestKeepTemp(t *testing.T) {
	cfg := testConfig(t)
	cfg.Run.KeepTemp = true
	c, err := NewClient(cfg, WithRunner(&fakeRunner{handle: simulate}))
	if err != nil {
		t.Fatal(err)
	}
	res, err := c.Run(context.Background(), "ones", Args{"dims": 1, "sizes": []int{2}})
	if err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(cfg.Run.TempDir)
	if err != nil {
		t.Fatal(err)
	}
	want := "bart-" + res.Invocation.ID + "-"
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), want) {
		t.Errorf("Expected kept workspace %s*, got %v", want, entries)
	}
}

// TestConcurrentRuns verifies that parallel calls never share files
func TestConcurrentRuns(t *testing.T) {
	c, cfg := newTestClient(t, &fakeRunner{handle: simulate})

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 1; i <= 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			in := cfl.Fill(complex(float32(n), 0), n)
			res, err := c.Run(context.Background(), "cabs", Args{"input": in})
			if err != nil {
				errs <- err
				return
			}
			if !res.First().Equal(in) {
				errs <- fmt.Errorf("call %d got another call's data", n)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestCommandDryRun(t *testing.T) {
	runner := &fakeRunner{}
	c, cfg := newTestClient(t, runner)

	inv, err := c.Command("fft", Args{"u": true, "bitmask": 3, "input": cfl.New(4)})
	if err != nil {
		t.Fatalf("Command: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Error("Expected no process to run")
	}
	if inv.Argv[2] != "-u" || inv.Argv[3] != "3" {
		t.Errorf("Unexpected argv %v", inv.Argv)
	}
	if !strings.HasPrefix(inv.Argv[4], cfg.Run.TempDir) {
		t.Errorf("Expected placeholder path under %s, got %s", cfg.Run.TempDir, inv.Argv[4])
	}
	assertEmptyDir(t, cfg.Run.TempDir)
}

func TestDebugLogsCommand(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	c, _ := newTestClient(t, &fakeRunner{handle: simulate}, WithLogger(logger))

	if _, err := c.Run(context.Background(), "version", nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "bart command") {
		t.Error("Expected no command log with debug off")
	}

	c.SetDebug(true)
	if !c.Debug() {
		t.Error("Expected debug on")
	}
	if _, err := c.Run(context.Background(), "version", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "bart command") || !strings.Contains(buf.String(), "/opt/bart/bart version") {
		t.Errorf("Expected command line in log, got %q", buf.String())
	}
}

type memRecorder struct {
	mu   sync.Mutex
	recs []models.Invocation
}

func (m *memRecorder) Record(_ context.Context, inv models.Invocation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, inv)
	return nil
}

func TestRecorder(t *testing.T) {
	rec := &memRecorder{}
	runner := &fakeRunner{handle: simulate}
	c, _ := newTestClient(t, runner, WithRecorder(rec))

	res, err := c.Run(context.Background(), "ones", Args{"dims": 1, "sizes": []int{3}})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = c.Run(context.Background(), "nosuch", nil)
	_, err = c.Run(context.Background(), "show", Args{"input": cfl.New(1)})
	if err != nil {
		t.Fatal(err)
	}
	runner.handle = func(context.Context, []string) (string, string, int, error) { return "", "boom", 1, nil }
	_, _ = c.Run(context.Background(), "version", nil)

	if len(rec.recs) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(rec.recs))
	}
	first := rec.recs[0]
	if first.ID != res.Invocation.ID || first.Tool != "ones" || !first.Succeeded() {
		t.Errorf("Unexpected first record %+v", first)
	}
	if len(first.Argv) != 5 {
		t.Errorf("Expected argv to be recorded, got %v", first.Argv)
	}
	last := rec.recs[2]
	if last.Succeeded() || last.ExitCode != 1 || last.Stderr != "boom" {
		t.Errorf("Unexpected failure record %+v", last)
	}
}

func TestExecRunner(t *testing.T) {
	r := ExecRunner{}
	ctx := context.Background()

	stdout, _, code, err := r.Run(ctx, "sh", []string{"-c", "echo hello"})
	if err != nil || code != 0 {
		t.Skipf("sh not available: %v", err)
	}
	if strings.TrimSpace(string(stdout)) != "hello" {
		t.Errorf("Expected hello, got %q", stdout)
	}

	_, stderr, code, err := r.Run(ctx, "sh", []string{"-c", "echo oops >&2; exit 3"})
	if err != nil {
		t.Fatalf("Expected exit status without error, got %v", err)
	}
	if code != 3 || strings.TrimSpace(string(stderr)) != "oops" {
		t.Errorf("Expected code 3 and stderr oops, got %d %q", code, stderr)
	}

	_, _, code, err = r.Run(ctx, "/nonexistent/bart-binary", nil)
	if err == nil || code != 127 {
		t.Errorf("Expected exec error with code 127, got %d %v", code, err)
	}

	tctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, _, _, err = r.Run(tctx, "sh", []string{"-c", "exec sleep 5"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}
