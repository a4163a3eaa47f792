package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileStore persists each namespace as <namespace>-data.json under a base
// directory, creating the directory on demand.
type FileStore struct {
	baseDir string
	log     *logrus.Logger
}

// NewFileStore creates a file store rooted at baseDir.
func NewFileStore(baseDir string, log *logrus.Logger) *FileStore {
	return &FileStore{baseDir: baseDir, log: log}
}

func (f *FileStore) path(namespace string) string {
	return filepath.Join(f.baseDir, namespace+"-data.json")
}

// Load reads the namespace file. A missing file or corrupt JSON is treated
// as "no saved data" and returns an empty object.
func (f *FileStore) Load(ctx context.Context, namespace string) (json.RawMessage, error) {
	data, err := os.ReadFile(f.path(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return EmptyBlob, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path(namespace), err)
	}
	if !json.Valid(data) {
		f.log.Warnf("corrupt JSON in %s, treating as no saved data", f.path(namespace))
		return EmptyBlob, nil
	}
	return data, nil
}

// Save overwrites the namespace file, creating the base directory if absent.
func (f *FileStore) Save(ctx context.Context, namespace string, data json.RawMessage) error {
	if err := os.MkdirAll(f.baseDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(f.path(namespace), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", f.path(namespace), err)
	}
	return nil
}

// Healthy checks that the base directory can be created.
func (f *FileStore) Healthy(ctx context.Context) error {
	return os.MkdirAll(f.baseDir, 0755)
}
