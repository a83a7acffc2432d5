package lockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uhppoted/uhppoted-lib/config"
	lib "github.com/uhppoted/uhppoted-lib/lockfile"
)

// Lockfile is the exclusive run lock. The lock file is never removed, so every process that opens
// the path locks the same file.
type Lockfile struct {
	lock lib.Lockfile
}

func Acquire(path string) (*Lockfile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return nil, err
	}

	lockfile := config.Lockfile{
		File:   path,
		Remove: false,
	}

	lock, err := lib.MakeLockFile(lockfile)
	if err != nil {
		return nil, fmt.Errorf("unable to acquire run lock %v (%w)", path, err)
	}

	return &Lockfile{
		lock: lock,
	}, nil
}

func (l *Lockfile) Release() {
	if l != nil && l.lock != nil {
		l.lock.Release()
		l.lock = nil
	}
}
