// Package cliutil holds small helpers shared by the render and scene
// command-line binaries: output path collision avoidance and writing
// a canvas to disk.
package cliutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// UniquePath returns path if nothing exists there yet, otherwise
// inserts " (n)" before the extension (n starting at 1) and retries
// until it finds a name nothing occupies.
func UniquePath(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	} else if err != nil {
		return "", err
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		} else if err != nil {
			return "", err
		}
	}
}

// WritePPM writes ppm to a collision-avoided path derived from path
// and returns the path actually written.
func WritePPM(path string, ppm string) (string, error) {
	out, err := UniquePath(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(out, []byte(ppm), 0o644); err != nil {
		return "", err
	}
	return out, nil
}
