package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"localconnect/pkg/logger"
)

// FileStore persists each key as a file under a base directory, written
// atomically via a temporary file and rename.
type FileStore struct {
	baseDir string
	mutex   sync.Mutex
	logger  *logger.Logger
}

// NewFileStore creates a file-backed store rooted at baseDir.
func NewFileStore(baseDir string, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}
	return &FileStore{
		baseDir: baseDir,
		logger:  log.WithComponent("file_store"),
	}, nil
}

func (f *FileStore) path(key string) string {
	// Keys may contain characters unsuitable for file names
	safe := ""
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			safe += string(r)
		default:
			safe += "_"
		}
	}
	return filepath.Join(f.baseDir, safe+".json")
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %v", key, err)
	}
	return data, nil
}

func (f *FileStore) Set(_ context.Context, key string, value []byte) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	target := f.path(key)
	tempFile := target + ".tmp"

	if err := os.WriteFile(tempFile, value, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file for %s: %v", key, err)
	}

	if err := os.Rename(tempFile, target); err != nil {
		return fmt.Errorf("failed to rename file for %s: %v", key, err)
	}

	f.logger.Debug("Persisted key to file", "key", key, "bytes", len(value))
	return nil
}

func (f *FileStore) Close() error {
	return nil
}
