package ports

import "os"

type FileSystemPort interface {
	Open(filePath string) (*os.File, error)
	Create(filePath string) (*os.File, error)
	Stat(filePath string) (os.FileInfo, error)
	ListFiles(sourceDir, extension string) ([]string, error)
	Exists(filePath string) (bool, error)
}
