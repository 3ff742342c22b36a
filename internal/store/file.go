package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileStore keeps one <key>.json file per collection under dir. Writes are
// atomic (temp file + rename) so the watcher never observes a torn payload.
type FileStore struct {
	dir string
	mu  sync.RWMutex

	watcher *fsnotify.Watcher
	events  chan string
	done    chan struct{}
}

// OpenFile opens (or creates) a file-backed store rooted at dir.
func OpenFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load implements Store.
func (s *FileStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return data, nil
}

// Save implements Store.
func (s *FileStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// Clear implements Store.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range Keys {
		if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear %q: %w", key, err)
		}
	}
	return nil
}

// Watch reports collection keys whose files change on disk, including edits
// made by another process. The channel closes when the store closes. Reloads
// triggered by our own writes are harmless: re-reading yields the state we
// just wrote.
func (s *FileStore) Watch() (<-chan string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.events != nil {
		return s.events, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to start watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", s.dir, err)
	}

	s.watcher = watcher
	s.events = make(chan string, 8)
	s.done = make(chan struct{})

	go s.forward()

	return s.events, nil
}

func (s *FileStore) forward() {
	defer close(s.events)
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			key := strings.TrimSuffix(filepath.Base(event.Name), ".json")
			if !isCollectionKey(key) || !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			select {
			case s.events <- key:
			default:
				// A reload is already pending; coalesce.
			}
		case _, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func isCollectionKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Close implements Store.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher != nil {
		close(s.done)
		err := s.watcher.Close()
		s.watcher = nil
		return err
	}
	return nil
}

var _ Store = (*FileStore)(nil)
