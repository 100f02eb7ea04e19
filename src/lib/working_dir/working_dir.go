package working_dir

import (
	"errors"
	"freecast-workers/src/lib/cerr"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

type WorkingDir struct {
	root string
}

// NewWorkingDir falls back to the OS temp dir when root is empty.
func NewWorkingDir(root string) (WorkingDir, error) {
	if root == "" {
		root = filepath.Join(os.TempDir(), "freecast")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return WorkingDir{}, cerr.Field("root", root).Wrap(err).Error("Failed to generate absolute path for working directory")
	}

	if err := os.MkdirAll(filepath.Join(absRoot, "tmp"), os.ModePerm); err != nil {
		return WorkingDir{}, cerr.Field("root", absRoot).Wrap(err).Error("Failed to create working directory")
	}

	return WorkingDir{
		root: absRoot,
	}, nil
}

func (w WorkingDir) Root() string {
	return w.root
}

func (w WorkingDir) TempDir() string {
	return filepath.Join(w.root, "tmp")
}

// CreateTempFile returns an open file under TempDir and a func that deletes it.
// Deleting a file that is already gone is not an error.
func (w WorkingDir) CreateTempFile(pattern string) (*os.File, func(), error) {
	file, err := os.CreateTemp(w.TempDir(), pattern)
	if err != nil {
		return nil, nil, cerr.Field("temp_dir", w.TempDir()).
			Wrap(err).Error("Failed to create a temporary file")
	}

	path := file.Name()
	removeTempFileFn := func() {
		err := os.Remove(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.WithField("tempFile", path).WithError(err).Error("Failed to remove temp file")
		}
	}

	return file, removeTempFileFn, nil
}
