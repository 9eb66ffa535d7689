package bart

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"gobart/pkg/cfl"
)

const testExe = "/opt/bart/bart"

// buildDry assembles a command against a placeholder workspace
func buildDry(t *testing.T, tool string, args Args) (*Invocation, error) {
	t.Helper()
	tl, ok := Lookup(tool)
	if !ok {
		t.Fatalf("unknown tool %s", tool)
	}
	return build(testExe, tl, args, "test", placeholder{dir: "/ws"})
}

func mustBuild(t *testing.T, tool string, args Args) *Invocation {
	t.Helper()
	inv, err := buildDry(t, tool, args)
	if err != nil {
		t.Fatalf("build %s: %v", tool, err)
	}
	return inv
}

func argvTail(inv *Invocation) string {
	return strings.Join(inv.Argv[2:], " ")
}

// TestOnesCommand verifies the canonical ones example
func TestOnesCommand(t *testing.T) {
	inv := mustBuild(t, "ones", Args{"dims": 2, "sizes": []int{4, 4}})

	want := []string{testExe, "ones", "2", "4", "4", "/ws/output"}
	if strings.Join(inv.Argv, " ") != strings.Join(want, " ") {
		t.Errorf("Expected %v, got %v", want, inv.Argv)
	}
	if len(inv.Outputs) != 1 || inv.Outputs[0].Name != "output" {
		t.Errorf("Expected one output named output, got %+v", inv.Outputs)
	}
}

// TestFFTNoOptionalFlags verifies that unset flags produce no tokens
func TestFFTNoOptionalFlags(t *testing.T) {
	inv := mustBuild(t, "fft", Args{"bitmask": 3, "input": cfl.New(4, 4)})
	if got := argvTail(inv); got != "3 /ws/input /ws/output" {
		t.Errorf("Expected '3 /ws/input /ws/output', got %q", got)
	}
}

func TestBoolFlags(t *testing.T) {
	inv := mustBuild(t, "fft", Args{"u": true, "i": false, "n": true, "bitmask": 1, "input": cfl.New(2)})
	if got := argvTail(inv); got != "-u -n 1 /ws/input /ws/output" {
		t.Errorf("Expected '-u -n 1 /ws/input /ws/output', got %q", got)
	}
}

// TestZeroEmitted verifies that numeric zero is a value, not absence
func TestZeroEmitted(t *testing.T) {
	inv := mustBuild(t, "pics", Args{
		"r":             0.0,
		"i":             0,
		"kspace":        cfl.New(2),
		"sensitivities": cfl.New(2),
	})
	got := argvTail(inv)
	if got != "-r 0 -i 0 /ws/kspace /ws/sensitivities /ws/output" {
		t.Errorf("Unexpected command %q", got)
	}
}

func TestFlagTokenOnce(t *testing.T) {
	inv := mustBuild(t, "pics", Args{
		"l":             1,
		"r":             0.01,
		"R":             "W:7:0:0.005",
		"kspace":        cfl.New(2),
		"sensitivities": cfl.New(2),
	})
	counts := map[string]int{}
	for _, a := range inv.Argv {
		counts[a]++
	}
	for _, tok := range []string{"-l", "-r", "-R"} {
		if counts[tok] != 1 {
			t.Errorf("Expected %s exactly once, got %d", tok, counts[tok])
		}
	}
	for _, tok := range []string{"-i", "-t", "-p", "-g"} {
		if counts[tok] != 0 {
			t.Errorf("Expected %s to be absent", tok)
		}
	}
	// flags keep table order
	if got := strings.Join(inv.Argv[2:8], " "); got != "-l 1 -r 0.01 -R W:7:0:0.005" {
		t.Errorf("Expected flags in table order, got %q", got)
	}
}

func TestListFlagJoined(t *testing.T) {
	inv := mustBuild(t, "ecalib", Args{"k": []int{6, 6, 1}, "r": 24, "kspace": cfl.New(2)})
	got := argvTail(inv)
	if !strings.HasPrefix(got, "-k 6:6:1 -r 24 ") {
		t.Errorf("Expected list flags joined with ':', got %q", got)
	}
}

// TestTupleInterleave verifies multi-tuples render a1 b1 a2 b2
func TestTupleInterleave(t *testing.T) {
	inv := mustBuild(t, "resize", Args{
		"c":     true,
		"dim":   []int{0, 1, 2},
		"size":  []int{64, 32, 16},
		"input": cfl.New(2),
	})
	if got := argvTail(inv); got != "-c 0 64 1 32 2 16 /ws/input /ws/output" {
		t.Errorf("Unexpected command %q", got)
	}

	inv = mustBuild(t, "extract", Args{
		"dim":   []int{0, 1},
		"start": []int{2, 3},
		"end":   []int{5, 7},
		"input": cfl.New(2),
	})
	if got := argvTail(inv); got != "0 2 5 1 3 7 /ws/input /ws/output" {
		t.Errorf("Unexpected command %q", got)
	}
}

func TestTupleLengthMismatch(t *testing.T) {
	_, err := buildDry(t, "slice", Args{"dim": []int{0, 1}, "pos": []int{3}, "input": cfl.New(2)})
	if !errors.Is(err, ErrTupleLength) {
		t.Errorf("Expected ErrTupleLength, got %v", err)
	}
}

func TestOptionalTuple(t *testing.T) {
	inv := mustBuild(t, "copy", Args{"input": cfl.New(2), "output": "/data/target"})
	if got := argvTail(inv); got != "/ws/input /data/target" {
		t.Errorf("Unexpected command %q", got)
	}
	inv = mustBuild(t, "copy", Args{"dim": 1, "pos": 5, "input": cfl.New(2), "output": "/data/target"})
	if got := argvTail(inv); got != "1 5 /ws/input /data/target" {
		t.Errorf("Unexpected command %q", got)
	}
	_, err := buildDry(t, "copy", Args{"dim": 1, "input": cfl.New(2), "output": "/data/target"})
	if !errors.Is(err, ErrMissingParam) {
		t.Errorf("Expected ErrMissingParam for half a tuple, got %v", err)
	}
}

func TestInputsExpanded(t *testing.T) {
	inv := mustBuild(t, "join", Args{
		"dimension": 2,
		"inputs":    []*cfl.Array{cfl.New(2), cfl.New(2), cfl.New(2)},
	})
	if got := argvTail(inv); got != "2 /ws/inputs_0 /ws/inputs_1 /ws/inputs_2 /ws/output" {
		t.Errorf("Unexpected command %q", got)
	}
	if len(inv.Inputs) != 3 {
		t.Errorf("Expected 3 staged inputs, got %d", len(inv.Inputs))
	}
}

func TestArrayFlag(t *testing.T) {
	inv := mustBuild(t, "nufft", Args{"a": true, "t": nil, "traj": cfl.New(3), "input": cfl.New(2)})
	if got := argvTail(inv); got != "-a /ws/traj /ws/input /ws/output" {
		t.Errorf("Unexpected command %q", got)
	}

	var noTraj *cfl.Array
	inv = mustBuild(t, "pics", Args{"t": noTraj, "p": cfl.New(2), "kspace": cfl.New(2), "sensitivities": cfl.New(2)})
	if got := argvTail(inv); got != "-p /ws/p /ws/kspace /ws/sensitivities /ws/output" {
		t.Errorf("Unexpected command %q", got)
	}
}

func TestOptionalInputsAndOutputs(t *testing.T) {
	inv := mustBuild(t, "fmac", Args{"input1": cfl.New(2)})
	if got := argvTail(inv); got != "/ws/input1 /ws/output" {
		t.Errorf("Unexpected command %q", got)
	}

	inv = mustBuild(t, "ecalib", Args{"kspace": cfl.New(2)})
	if len(inv.Outputs) != 2 || !inv.Outputs[1].Optional {
		t.Errorf("Expected optional ev_maps output, got %+v", inv.Outputs)
	}
}

func TestVariadicWithoutOutputs(t *testing.T) {
	inv := mustBuild(t, "bitmask", Args{"dims": []int{0, 1, 2}})
	if got := argvTail(inv); got != "0 1 2" {
		t.Errorf("Unexpected command %q", got)
	}
	inv = mustBuild(t, "bitmask", Args{"b": true, "dims": 7})
	if got := argvTail(inv); got != "-b 7" {
		t.Errorf("Unexpected command %q", got)
	}
	if len(inv.Outputs) != 0 {
		t.Errorf("Expected no outputs, got %+v", inv.Outputs)
	}
}

func TestComplexScalar(t *testing.T) {
	inv := mustBuild(t, "scale", Args{"factor": complex(0.5, -1), "input": cfl.New(2)})
	if got := argvTail(inv); got != "0.5-1i /ws/input /ws/output" {
		t.Errorf("Unexpected command %q", got)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args Args
		want error
	}{
		{"unknown param", "fft", Args{"bitmask": 1, "input": cfl.New(2), "x": 1}, ErrUnknownParam},
		{"missing scalar", "fft", Args{"input": cfl.New(2)}, ErrMissingParam},
		{"missing input", "fft", Args{"bitmask": 1}, ErrMissingParam},
		{"nil input", "fft", Args{"bitmask": 1, "input": (*cfl.Array)(nil)}, ErrMissingParam},
		{"bool with value", "fft", Args{"u": 1, "bitmask": 1, "input": cfl.New(2)}, ErrBadValue},
		{"array as scalar", "fft", Args{"bitmask": cfl.New(1), "input": cfl.New(2)}, ErrBadValue},
		{"scalar as array", "fft", Args{"bitmask": 1, "input": 3}, ErrBadValue},
		{"output supplied", "fft", Args{"bitmask": 1, "input": cfl.New(2), "output": "x"}, ErrBadValue},
		{"path not string", "toimg", Args{"input": cfl.New(2), "prefix": 5}, ErrBadValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildDry(t, tt.tool, tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestBuildExported(t *testing.T) {
	inv, err := Build(testExe, "ones", Args{"dims": 1, "sizes": []int{3}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if inv.ID == "" {
		t.Error("Expected an invocation id")
	}
	if got := strings.Join(inv.Argv[:4], " "); got != testExe+" ones 1 3" {
		t.Errorf("Unexpected command %q", got)
	}
	if _, err := Build(testExe, "nosuchtool", nil); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Expected ErrUnknownTool, got %v", err)
	}
}

func TestInvocationString(t *testing.T) {
	inv := &Invocation{Argv: []string{"/opt/bart/bart", "pics", "-R", "W:7:0:0.005", "/tmp/my dir/k", "it's", ""}}
	want := `/opt/bart/bart pics -R W:7:0:0.005 '/tmp/my dir/k' 'it'\''s' ''`
	if got := inv.String(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

// TestWorkspaceStaging verifies inputs are written where the command points
func TestWorkspaceStaging(t *testing.T) {
	ws, err := NewWorkspace(t.TempDir(), "abc", false)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	if !strings.HasPrefix(filepath.Base(ws.Dir), "bart-abc-") {
		t.Errorf("Unexpected workspace name %s", ws.Dir)
	}

	tool, _ := Lookup("fft")
	in := cfl.Fill(complex(1, 2), 3, 2)
	inv, err := build(testExe, tool, Args{"bitmask": 1, "input": in}, "abc", ws)
	if err != nil {
		t.Fatal(err)
	}
	if len(inv.Inputs) != 1 {
		t.Fatalf("Expected one staged input, got %d", len(inv.Inputs))
	}
	back, err := cfl.ReadCFL(inv.Inputs[0].Path)
	if err != nil {
		t.Fatalf("ReadCFL: %v", err)
	}
	if !back.Equal(in) {
		t.Error("Expected staged input to match")
	}
}
