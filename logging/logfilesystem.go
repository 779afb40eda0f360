package logging

import (
	"io"
	"os"
	"path/filepath"
)

// LogFileSystem is the interface to handle results file directory creation and file open/append.
type LogFileSystem interface {
	MkDir(dirname string) error
	Open(name string) (f io.WriteCloser, err error)
}

// LogFileSystemImpl is the implementation of LogFileSystem on the real file system.
type LogFileSystemImpl struct {
}

// MkDir creates a directory named path, along with any necessary parents. If path is already a directory, MkDir does nothing and returns nil.
func (fs *LogFileSystemImpl) MkDir(name string) error {
	return os.MkdirAll(name, 0755)
}

// Open opens the file for appending, creating it if it does not exist.
func (fs *LogFileSystemImpl) Open(name string) (f io.WriteCloser, err error) {
	return os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}

// OpenResultsFile creates the directory of path if needed and opens path for appending results.
func OpenResultsFile(fs LogFileSystem, path string) (io.WriteCloser, error) {
	if err := fs.MkDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return fs.Open(path)
}
