package bart

import (
	"fmt"
	"os"
	"path/filepath"

	"gobart/pkg/cfl"
)

// Workspace is the private directory of one call. Inputs are written and
// outputs read as CFL pairs named after their parameter.
type Workspace struct {
	Dir  string
	keep bool
}

// NewWorkspace creates bart-<id>-* under root, or under the system temporary
// directory when root is empty.
func NewWorkspace(root, id string, keep bool) (*Workspace, error) {
	dir, err := os.MkdirTemp(root, "bart-"+id+"-")
	if err != nil {
		return nil, fmt.Errorf("error creating workspace: %w", err)
	}
	return &Workspace{Dir: dir, keep: keep}, nil
}

// Path returns the CFL base path for name.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

func (w *Workspace) WriteInput(name string, a *cfl.Array) (string, error) {
	p := w.Path(name)
	if err := cfl.WriteCFL(p, a); err != nil {
		return "", err
	}
	return p, nil
}

// ReadOutput loads an output. An optional output the tool did not write
// yields nil without error.
func (w *Workspace) ReadOutput(f File) (*cfl.Array, error) {
	if !cfl.Exists(f.Path) {
		if f.Optional {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrMissingOutput, f.Name)
	}
	return cfl.ReadCFL(f.Path)
}

// Close removes the directory unless the workspace was created to be kept.
func (w *Workspace) Close() error {
	if w.keep {
		return nil
	}
	return os.RemoveAll(w.Dir)
}

// placeholder stands in for a workspace during dry runs. It never touches
// the filesystem.
type placeholder struct {
	dir string
}

func newPlaceholder(root, id string) placeholder {
	if root == "" {
		root = os.TempDir()
	}
	return placeholder{dir: filepath.Join(root, "bart-"+id)}
}

func (p placeholder) Path(name string) string {
	return filepath.Join(p.dir, name)
}

func (p placeholder) WriteInput(name string, _ *cfl.Array) (string, error) {
	return p.Path(name), nil
}
