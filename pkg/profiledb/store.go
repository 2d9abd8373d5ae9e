package profiledb

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/macshift-net/macshift/pkg/ios"
)

// Store persists and queries a profile knowledge base.
type Store interface {
	// Save writes the full knowledge base.
	Save(db DB) error
	// Load reads the full knowledge base. A store that has never been
	// written loads as an empty DB.
	Load() (DB, error)
	// Get looks up one record by hardware address (any spelling).
	Get(mac string) (Record, bool, error)
}

// FileStore keeps the knowledge base as one indented JSON document,
// a nested mac → record mapping.
type FileStore struct {
	Path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Save writes the knowledge base as indented JSON.
func (s *FileStore) Save(db DB) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("writing profile db: %w", err)
	}
	return nil
}

// Load reads the knowledge base. A missing file loads as an empty DB.
func (s *FileStore) Load() (DB, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return DB{}, nil
		}
		return nil, fmt.Errorf("reading profile db: %w", err)
	}
	var db DB
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("parsing profile db: %w", err)
	}
	return db, nil
}

// Get looks up one record by hardware address.
func (s *FileStore) Get(mac string) (Record, bool, error) {
	db, err := s.Load()
	if err != nil {
		return Record{}, false, err
	}
	rec, ok := db[normalizeKey(mac)]
	if !ok {
		return Record{}, false, nil
	}
	return rec, true, nil
}

var _ Store = (*FileStore)(nil)

func normalizeKey(mac string) string {
	return ios.NormalizeMAC(mac)
}
