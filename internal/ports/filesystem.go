package ports

import (
	"os"
	"path/filepath"
	"strings"
)

// FileSystem provides the few file operations units need: reading and
// writing profile files, and probing for marker files left by installers.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Exists(path string) bool
	MkdirAll(path string, perm os.FileMode) error
}

// ExpandPath expands a leading ~/ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
