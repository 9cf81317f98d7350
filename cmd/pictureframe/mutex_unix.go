//go:build !windows

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dixieflatline76/PictureFrame/config"
	"github.com/dixieflatline76/PictureFrame/util/log"
)

var lockFile *os.File

func lockPath() string {
	return filepath.Join(os.TempDir(), strings.ToLower(config.AppName)+".lock")
}

// acquireLock takes an exclusive fcntl lock on a file in the temp directory.
// It reports false when another process holds it.
func acquireLock() (bool, error) {
	f, err := os.OpenFile(lockPath(), os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return false, fmt.Errorf("opening lock file: %w", err)
	}

	err = syscall.FcntlFlock(f.Fd(), syscall.F_SETLK, &syscall.Flock_t{
		Type:   syscall.F_WRLCK,
		Whence: 0,
		Len:    0, // whole file
	})
	if err != nil {
		f.Close()
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EACCES) {
			return false, nil
		}
		return false, fmt.Errorf("locking %s: %w", f.Name(), err)
	}

	lockFile = f
	return true, nil
}

// releaseLock drops the lock and removes the file. Safe to call twice.
func releaseLock() {
	if lockFile == nil {
		return
	}
	if err := syscall.FcntlFlock(lockFile.Fd(), syscall.F_SETLK, &syscall.Flock_t{Type: syscall.F_UNLCK}); err != nil {
		log.Printf("Failed to unlock %s: %v", lockFile.Name(), err)
	}
	lockFile.Close()
	os.Remove(lockFile.Name())
	lockFile = nil
}
