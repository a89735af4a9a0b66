package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"parts-analyzer/models"
	"parts-analyzer/utils"
)

// JSONStore persists the curated list as one JSON array on disk. Every
// mutation rewrites the full file; a write failure is logged and leaves
// the in-memory list ahead of disk.
type JSONStore struct {
	mu     sync.Mutex
	path   string
	logger *utils.Logger
	parts  []*models.SavedPart
	now    func() time.Time
}

// NewJSONStore opens (or initializes) the saved-parts file at path.
func NewJSONStore(path string, logger *utils.Logger) *JSONStore {
	s := &JSONStore{path: path, logger: logger, now: time.Now}
	s.load()
	return s
}

func (s *JSONStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("[saved] Failed to read %s: %v", s.path, err)
		}
		s.parts = nil
		return
	}
	if err := json.Unmarshal(data, &s.parts); err != nil {
		s.logger.Error("[saved] Failed to parse %s: %v", s.path, err)
		s.parts = nil
		return
	}
	s.logger.Info("[saved] Loaded %d saved parts", len(s.parts))
}

// persist serializes the whole collection. Callers hold s.mu.
func (s *JSONStore) persist() {
	data, err := json.MarshalIndent(s.parts, "", "  ")
	if err != nil {
		s.logger.Error("[saved] Serialize failed: %v", err)
		return
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			s.logger.Error("[saved] Create dir %s failed: %v", dir, err)
			return
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.logger.Error("[saved] Write failed — in-memory list is now ahead of disk: %v", err)
	}
}

// Add appends a curated entry unless the same vehicle+part is already
// saved.
func (s *JSONStore) Add(entry *models.SavedPart) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hasDuplicate(s.parts, entry) {
		s.logger.Warn("[saved] Part already saved: %s", entry.PartName)
		return false
	}

	entry.SavedAt = s.now()
	s.parts = append(s.parts, entry)
	s.persist()
	s.logger.Info("[saved] Saved: %s", entry.PartName)
	return true
}

// AddManual appends a manually priced entry without a duplicate check.
func (s *JSONStore) AddManual(partName string, junkyardPrice, soldPrice float64) *models.SavedPart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := newManualEntry(partName, junkyardPrice, soldPrice, s.now())
	s.parts = append(s.parts, entry)
	s.persist()
	return entry
}

// Remove deletes the entry at index.
func (s *JSONStore) Remove(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.parts) {
		return false
	}
	removed := s.parts[index]
	s.parts = append(s.parts[:index], s.parts[index+1:]...)
	s.persist()
	s.logger.Info("[saved] Removed: %s", removed.PartName)
	return true
}

// UpdateNotes replaces the media link and notes of the entry at index.
func (s *JSONStore) UpdateNotes(index int, youtubeLink, notes string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.parts) {
		return false
	}
	s.parts[index].YoutubeLink = youtubeLink
	s.parts[index].Notes = notes
	s.persist()
	return true
}

// Clear empties the saved list.
func (s *JSONStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.parts = []*models.SavedPart{}
	s.persist()
	s.logger.Info("[saved] Cleared all saved parts")
}

// All returns the saved parts in insertion order.
func (s *JSONStore) All() []*models.SavedPart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*models.SavedPart{}, s.parts...)
}

func (s *JSONStore) Close() error {
	return nil
}
