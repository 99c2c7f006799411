package filesystem

import (
	"os"
	"path/filepath"
)

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsDirectory(path string) bool {
	fs, err := os.Stat(path)
	if err != nil {
		return false
	}

	return fs.IsDir()
}

// IsRegularFile reports whether path names a regular file that can be
// opened for reading.
func IsRegularFile(path string) bool {
	fs, err := os.Stat(path)
	if err != nil || !fs.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()

	return true
}
