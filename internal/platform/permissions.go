package platform

import (
	"os"
	"runtime"
)

// Default modes for files and directories written into a project.
const (
	FileMode os.FileMode = 0644
	DirMode  os.FileMode = 0755
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
