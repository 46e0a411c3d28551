package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Opens a file for reading.
func (lfs *LocalFileSystem) Open(filePath string) (*os.File, error) {
	return os.Open(filePath)
}

// Creates a file, truncating it when present. Parent directories are created
// with 0755 permissions.
func (lfs *LocalFileSystem) Create(filePath string) (*os.File, error) {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := lfs.CreateDir(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(filePath)
}

// Returns file metadata.
func (lfs *LocalFileSystem) Stat(filePath string) (os.FileInfo, error) {
	return os.Stat(filePath)
}

// Creates a directory and its parents if not present. Returns an error if the
// path exists but isn't a directory.
func (lfs *LocalFileSystem) CreateDir(dirPath string, permission os.FileMode) error {
	stat, err := os.Stat(dirPath)
	if err == nil {
		if !stat.IsDir() {
			return fmt.Errorf("existing path %s isn't a directory", dirPath)
		}
		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(dirPath, permission); err != nil {
		return fmt.Errorf("error in creating all directories %s : %w", dirPath, err)
	}
	return nil
}

// Lists regular files below sourceDir, sorted by path. When extension is not
// empty only files with that extension are returned.
func (lfs *LocalFileSystem) ListFiles(sourceDir, extension string) ([]string, error) {
	files := make([]string, 0)

	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	if err := filepath.WalkDir(sourceDir, func(path string, ds fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !ds.Type().IsRegular() {
			return nil
		}
		if extension == "" || filepath.Ext(path) == extension {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
