// Package fs provides a BlobStore that keeps each key in its own JSON file.
package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// TempFilePrefix marks files staged by Set; Keys skips them.
const TempFilePrefix = ".scribe-tmp-"

const (
	fileExt  = ".json"
	filePerm = 0o600
	dirPerm  = 0o755
)

// Config holds the configuration for the filesystem blob store.
type Config struct {
	Dir       string
	MustExist bool
	Logger    *slog.Logger
}

// Store implements core.BlobStore on top of a directory: key "notes" lives in "<dir>/notes.json".
type Store struct {
	Dir    string
	config Config
	logger *slog.Logger

	mu            sync.RWMutex
	watcherActive bool
	lastChange    *time.Time
}

// New creates a filesystem blob store. Call Initialize before use.
func New(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		Dir:    config.Dir,
		config: config,
		logger: logger,
	}
}

// Initialize makes sure the directory exists, creating it unless MustExist is set.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("store directory does not exist: %s", s.Dir)
		}
		if err != nil {
			return fmt.Errorf("failed to stat store directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Dir)
		}
		return nil
	}
	if err := os.MkdirAll(s.Dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Get reads the file for key. A missing file is reported as absent, not as an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), true, nil
}

// Set atomically replaces the file for key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.replace(path, []byte(value)); err != nil {
		return err
	}
	s.logger.Debug("blob written", "key", key, "bytes", len(value))
	return nil
}

// replace stages data in a sibling temp file and renames it over path, so a
// concurrent Get sees either the previous value or the new one.
func (s *Store) replace(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", filepath.Base(path), err)
	}
	staged := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(staged)
		}
	}()

	if err = tmp.Chmod(filePerm); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", staged, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", staged, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", staged, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", staged, err)
	}
	if err = os.Rename(staged, path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", filepath.Base(path), err)
	}
	return nil
}

// Keys lists stored keys matching a doublestar pattern ("" matches everything), sorted.
func (s *Store) Keys(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid key pattern %q", pattern)
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) || strings.HasPrefix(name, TempFilePrefix) {
			continue
		}
		key := strings.TrimSuffix(name, fileExt)
		ok, err := doublestar.Match(pattern, key)
		if err != nil {
			return nil, fmt.Errorf("invalid key pattern %q: %w", pattern, err)
		}
		if ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Path returns the file backing key.
func (s *Store) Path(key string) (string, error) {
	return s.path(key)
}

func (s *Store) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.Dir, key+fileExt), nil
}
