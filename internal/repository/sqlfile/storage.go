package sqlfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nkiryanov/pointseed/internal/models"
	"github.com/nkiryanov/pointseed/internal/repository"
)

type Storage struct {
	// Directory the script is written to; the file name comes from the profile layout
	Dir string
}

func NewStorage(dir string) repository.DatasetWriter {
	return &Storage{Dir: dir}
}

// Save renders the whole script before touching the disk, so a render
// failure never leaves a partial file.
func (s *Storage) Save(ds models.Dataset) (string, error) {
	l, err := LayoutFor(ds.Profile)
	if err != nil {
		return "", err
	}

	script, err := Render(ds)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.Dir, l.FileName)
	if err := os.WriteFile(path, script.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("can't write sql file. Err: %w", err)
	}

	return path, nil
}
