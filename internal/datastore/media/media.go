package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploaded profile photos to a local directory and hands
// back the URL path the front-end serves them from. The blob store is an
// external collaborator; only the path string is persisted.
type Store struct {
	dir     string
	urlBase string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, urlBase: "/static/uploads"}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// SavePhoto stores the uploaded file under a name derived from the user
// id plus a random suffix, and returns the public URL path.
func (s *Store) SavePhoto(userID uint, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("user_%d_%s%s", userID, uuid.NewString(), filepath.Ext(file.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	return s.urlBase + "/" + name, nil
}
