package scratch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"resume-coach/internal/shared/telemetry"
	"resume-coach/internal/shared/util"
)

// Store holds transient per-request uploads on the local filesystem.
// Files live only for the duration of the request that wrote them.
type Store struct {
	baseDir string
}

// New creates the scratch directory if needed and returns a store rooted there.
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir %s: %w", baseDir, err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save writes the reader to a uniquely named file derived from fileName and
// returns its path. The random prefix keeps concurrent uploads sharing a
// client file name from colliding.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}

	path := filepath.Join(s.baseDir, uuid.NewString()+"_"+sanitized)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("open scratch file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	return path, nil
}

// Remove deletes a scratch file. Failures are logged, not returned; callers
// invoke it from defers on every request exit path.
func (s *Store) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		telemetry.Warn("scratch.remove.failed", map[string]any{
			"path": path,
			"err":  err.Error(),
		})
	}
}

// Dir returns the scratch root, useful for tests asserting cleanup.
func (s *Store) Dir() string {
	return s.baseDir
}
