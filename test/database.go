package test

import (
	"path/filepath"
	"testing"
)

// TmpFile returns the path to a fresh database file for a test. The
// file lives in a per-call temporary directory, so repeated calls in
// one test do not collide and cleanup comes for free.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "snackpool.db")
}
