package resume

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
)

// Store is the port for reading the resume record.
type Store interface {
	Load(ctx context.Context) (Resume, error)
}

type fileStore struct {
	path string
}

// NewFileStore reads the resume from a JSON file.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load(ctx context.Context) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Resume{}, apperr.DataLoad(s.path, err)
	}
	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return Resume{}, apperr.DataLoad(s.path, err)
	}
	if r.Profile.FullName == "" {
		return Resume{}, apperr.DataLoad(s.path, errors.New("profile.full_name is empty"))
	}
	return r, nil
}
