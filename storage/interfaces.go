package storage

import "parts-analyzer/models"

// SavedStore is the interface any curated-list backend must satisfy.
//
// Implementations keep the collection in memory and rewrite it wholesale on
// every mutation; the last successful writer wins. There is no locking or
// versioning across processes; the store is only safe under a single-user,
// single-process run.
type SavedStore interface {
	// Add stamps the entry and appends it unless an entry with the same
	// (year, make, model, part name) already exists; a duplicate reports
	// failure without mutating state.
	Add(entry *models.SavedPart) bool
	// AddManual appends a manually priced entry unconditionally; manual
	// entries bypass the duplicate check.
	AddManual(partName string, junkyardPrice, soldPrice float64) *models.SavedPart
	// Remove deletes by position; out-of-range reports failure.
	Remove(index int) bool
	// UpdateNotes mutates only the annotation fields of one entry.
	UpdateNotes(index int, youtubeLink, notes string) bool
	Clear()
	// All returns the collection in insertion order.
	All() []*models.SavedPart
	Close() error
}
