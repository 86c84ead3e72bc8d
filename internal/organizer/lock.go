package organizer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"filesort/internal/services"
)

// runLock guards a target directory against concurrent organize passes from
// separate processes. Lock files live in the lock directory, never inside the
// target, so they are not picked up by the scan.
type runLock struct {
	path string
	lock *flock.Flock
}

// lockPathFor keys the lock on the symlink-free path so every route to the
// same directory shares one lock.
func lockPathFor(lockDir, target string) string {
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}
	sum := sha256.Sum256([]byte(target))
	return filepath.Join(lockDir, hex.EncodeToString(sum[:8])+".lock")
}

// acquireRunLock takes the lock for target. A blank lockDir disables locking
// and returns a nil lock.
func acquireRunLock(lockDir, target string) (*runLock, error) {
	if lockDir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "organize", "create lock dir", lockDir, err)
	}
	path := lockPathFor(lockDir, target)
	l := &runLock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "organize", "acquire lock", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrBusy, "organize", "acquire lock", fmt.Sprintf("another organize run holds %s", target), nil)
	}
	return l, nil
}

func (l *runLock) release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
