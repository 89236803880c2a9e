package ytdlp

import "os"

// File is a finished download living in its own temp directory.
type File struct {
	Path     string
	Filename string
	Size     int64
	dir      string
}

func (f *File) Close() error {
	return os.RemoveAll(f.dir)
}
