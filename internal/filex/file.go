// Package filex creates local output files for the client.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureSubdDir creates dirName under the working directory if needed and
// returns its absolute path. An absolute dirName is used as is.
func EnsureSubdDir(dirName string) (string, error) {
	dir := dirName
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dirName)
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// CreateInSubdir creates (or truncates) fileName inside dirName.
func CreateInSubdir(dirName, fileName string) (*os.File, error) {
	dir, err := EnsureSubdDir(dirName)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(filepath.Join(dir, filepath.Base(fileName)))
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", fileName, err)
	}
	return f, nil
}
