package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputName is the file name of a day's input inside its directory.
const InputName = "input.txt"

// InputPath returns <dir>/<day>/input.txt.
func InputPath(dir string, d Day) string {
	return filepath.Join(dir, d.String(), InputName)
}

// HasInput reports whether the input file for d exists under dir.
func HasInput(dir string, d Day) bool {
	info, err := os.Stat(InputPath(dir, d))
	return err == nil && !info.IsDir()
}

// ReadInput reads the input file for d under dir.
func ReadInput(dir string, d Day) (string, error) {
	return ReadFile(InputPath(dir, d))
}

// ReadFile reads one puzzle input file.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}

	return string(data), nil
}
