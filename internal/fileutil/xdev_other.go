//go:build !unix

package fileutil

import "os"

// IsCrossDevice always reports false on platforms without EXDEV; their rename
// errors surface unchanged.
func IsCrossDevice(error) bool {
	return false
}

// CheckAccess verifies dir can be opened for listing.
func CheckAccess(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	return f.Close()
}
