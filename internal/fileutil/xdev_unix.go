//go:build unix

package fileutil

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsCrossDevice reports whether err is the rename failure raised when source
// and destination live on different filesystems.
func IsCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}

// CheckAccess verifies that the current user can list, read, and create
// entries in dir.
func CheckAccess(dir string) error {
	return unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK)
}
