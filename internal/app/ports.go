package app

import "io/fs"

type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	Mkdir(path string, perm fs.FileMode) error
	Rename(oldPath, newPath string) error
}
