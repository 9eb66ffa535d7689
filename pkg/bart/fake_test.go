package bart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"gobart/pkg/cfl"
	"gobart/pkg/config"
)

// fakeRunner stands in for the toolbox executable. It records every call
// and delegates to handle, which sees the arguments after the executable.
type fakeRunner struct {
	mu     sync.Mutex
	calls  [][]string
	handle func(ctx context.Context, args []string) (stdout, stderr string, code int, err error)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args []string) ([]byte, []byte, int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()
	if f.handle == nil {
		return nil, nil, 0, nil
	}
	stdout, stderr, code, err := f.handle(ctx, args)
	return []byte(stdout), []byte(stderr), code, err
}

func (f *fakeRunner) lastCall() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	return f.calls[len(f.calls)-1]
}

// simulate implements a few tools well enough to exercise the marshaller.
func simulate(_ context.Context, args []string) (string, string, int, error) {
	switch args[0] {
	case "ones", "zeros":
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", "bad dims", 1, nil
		}
		sizes := make([]int, n)
		for i := range sizes {
			if sizes[i], err = strconv.Atoi(args[2+i]); err != nil {
				return "", "bad size", 1, nil
			}
		}
		var v complex64
		if args[0] == "ones" {
			v = 1
		}
		if err := cfl.WriteCFL(args[2+n], cfl.Fill(v, sizes...)); err != nil {
			return "", err.Error(), 1, nil
		}
		return "", "", 0, nil

	case "conj", "cabs", "squeeze", "fft", "scale":
		// copy input to output
		in, out := args[len(args)-2], args[len(args)-1]
		a, err := cfl.ReadCFL(in)
		if err != nil {
			return "", err.Error(), 1, nil
		}
		if err := cfl.WriteCFL(out, a); err != nil {
			return "", err.Error(), 1, nil
		}
		return "", "", 0, nil

	case "ecalib", "nlinv":
		// writes only the first of its two outputs
		out := args[len(args)-2]
		if err := cfl.WriteCFL(out, cfl.Fill(2, 2, 2)); err != nil {
			return "", err.Error(), 1, nil
		}
		return "", "", 0, nil

	case "bitmask":
		if args[1] == "-b" {
			return "0 1 2\n", "", 0, nil
		}
		mask := 0
		for _, a := range args[1:] {
			d, _ := strconv.Atoi(a)
			mask |= 1 << d
		}
		return fmt.Sprintf("%d\n", mask), "", 0, nil

	case "version":
		return "v0.9.00\n", "", 0, nil
	case "estvar":
		return "Estimated noise variance: 1.5e-05\n", "", 0, nil
	case "nrmse":
		return "0.125000\n", "", 0, nil
	case "sdot":
		return "+1.000000e+00-2.500000e-01i\n", "", 0, nil
	case "show":
		return "+1.000000e+00+0.000000e+00i\n", "", 0, nil
	}
	return "", "unknown command " + args[0], 1, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Toolbox.Path = "/opt/bart"
	cfg.Run.TempDir = t.TempDir()
	return cfg
}

func newTestClient(t *testing.T, runner Runner, opts ...Option) (*Client, *config.Config) {
	t.Helper()
	cfg := testConfig(t)
	c, err := NewClient(cfg, append([]Option{WithRunner(runner)}, opts...)...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, cfg
}

// assertEmptyDir fails when a workspace was left behind.
func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		t.Errorf("Expected workspace to be removed, found %s", filepath.Join(dir, e.Name()))
	}
}
