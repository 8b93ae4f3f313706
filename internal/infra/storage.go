package infra

// storage.go — local disk storage for uploaded files (store logos).
// Files land in basePath/{userID}/{name} and are served back under
// publicBaseURL/uploads/{userID}/{name} by the router's static mount.

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type LocalStorage struct {
	basePath      string
	publicBaseURL string
}

func NewLocalStorage(basePath, publicBaseURL string) *LocalStorage {
	return &LocalStorage{
		basePath:      basePath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Salvar writes the file under the user's directory and returns its public URL.
// The stored name is sanitized to its base name to keep uploads inside basePath.
func (s *LocalStorage) Salvar(userID uuid.UUID, nome string, r io.Reader) (string, error) {
	nome = filepath.Base(nome)
	if nome == "." || nome == string(filepath.Separator) {
		return "", fmt.Errorf("storage: nome de arquivo inválido")
	}

	dir := filepath.Join(s.basePath, userID.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, nome))
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", s.publicBaseURL, userID, nome), nil
}
