package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/furnishop/storefront/internal/core/domain"
	"github.com/furnishop/storefront/internal/core/ports"
)

// FileStore keeps one JSON file per session snapshot under a directory.
// It is the single-node stand-in for the Redis store.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(userID string) string {
	return filepath.Join(s.dir, userID+".json")
}

func (s *FileStore) Save(_ context.Context, snap ports.SessionSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}
	if err := os.WriteFile(s.path(snap.UserID), data, 0o600); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context, userID string) (*ports.SessionSnapshot, error) {
	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session snapshot: %w", err)
	}

	var snap ports.SessionSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode session snapshot: %w", err)
	}
	return &snap, nil
}

func (s *FileStore) LoadAll(_ context.Context) ([]ports.SessionSnapshot, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read session dir: %w", err)
	}

	var snaps []ports.SessionSnapshot
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			continue
		}
		var snap ports.SessionSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			continue
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func (s *FileStore) Delete(_ context.Context, userID string) error {
	if err := os.Remove(s.path(userID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete session snapshot: %w", err)
	}
	return nil
}
