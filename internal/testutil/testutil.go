// Package testutil holds helpers shared by package tests
package testutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// Fixture copies testdata/name into a fresh temporary directory and returns
// the path of the copy.
func Fixture(t *testing.T, name string) string {
	t.Helper()

	dst := filepath.Join(t.TempDir(), name)

	if err := CopyFile(filepath.Join("testdata", name), dst); err != nil {
		t.Fatal(err)
	}

	return dst
}
