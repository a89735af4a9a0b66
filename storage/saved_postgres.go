package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"parts-analyzer/models"
	"parts-analyzer/utils"
)

// PostgresStore keeps the curated list in PostgreSQL with the same
// rewrite-on-mutation contract as the JSON store: the table is cleared and
// re-inserted on every change, preserving insertion order via a position
// column.
type PostgresStore struct {
	mu     sync.Mutex
	db     *sql.DB
	logger *utils.Logger
	parts  []*models.SavedPart
	now    func() time.Time
}

// NewPostgresStore opens a connection, runs schema migration and loads the
// existing list.
func NewPostgresStore(dsn string, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	s := &PostgresStore{db: db, logger: logger, now: time.Now}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("postgres: load: %w", err)
	}

	logger.Info("[saved] Loaded %d saved parts from PostgreSQL", len(s.parts))
	return s, nil
}

func (s *PostgresStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS saved_parts (
			id                 SERIAL PRIMARY KEY,
			position           INT          NOT NULL,
			part_name          TEXT         NOT NULL,
			ebay_title         TEXT         NOT NULL DEFAULT '',
			ebay_url           TEXT         NOT NULL DEFAULT '',
			ebay_price         NUMERIC(10,2) NOT NULL DEFAULT 0,
			best_listing_image TEXT         NOT NULL DEFAULT '',
			junkyard_price     NUMERIC(10,2) NOT NULL DEFAULT 0,
			junkyard_parts     TEXT         NOT NULL DEFAULT '',
			roi                DOUBLE PRECISION NOT NULL DEFAULT 0,
			roi_rating         VARCHAR(10)  NOT NULL DEFAULT 'Low',
			vehicle_type       VARCHAR(20)  NOT NULL DEFAULT '',
			year               VARCHAR(10)  NOT NULL DEFAULT '',
			make               TEXT         NOT NULL DEFAULT '',
			model              TEXT         NOT NULL DEFAULT '',
			youtube_link       TEXT         NOT NULL DEFAULT '',
			notes              TEXT         NOT NULL DEFAULT '',
			manual_entry       BOOLEAN      NOT NULL DEFAULT FALSE,
			saved_at           TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_saved_parts_position ON saved_parts(position);
	`)
	return err
}

func (s *PostgresStore) load() error {
	rows, err := s.db.Query(`
		SELECT part_name, ebay_title, ebay_url, ebay_price, best_listing_image,
		       junkyard_price, junkyard_parts, roi, roi_rating, vehicle_type,
		       year, make, model, youtube_link, notes, manual_entry, saved_at
		FROM saved_parts
		ORDER BY position
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var parts []*models.SavedPart
	for rows.Next() {
		p := &models.SavedPart{}
		var junkyardParts, rating string
		if err := rows.Scan(
			&p.PartName, &p.EbayTitle, &p.EbayURL, &p.EbayPrice, &p.BestListingImage,
			&p.JunkyardPrice, &junkyardParts, &p.ROI, &rating, &p.VehicleType,
			&p.Year, &p.Make, &p.Model, &p.YoutubeLink, &p.Notes, &p.ManualEntry, &p.SavedAt,
		); err != nil {
			return err
		}
		p.ROIRating = models.Tier(rating)
		if junkyardParts != "" {
			p.JunkyardParts = strings.Split(junkyardParts, "|")
		}
		parts = append(parts, p)
	}
	s.parts = parts
	return rows.Err()
}

// persist rewrites the whole table from the in-memory list. Callers hold
// s.mu. Errors are logged, matching the JSON store's divergence policy.
func (s *PostgresStore) persist() {
	if _, err := s.db.Exec("DELETE FROM saved_parts"); err != nil {
		s.logger.Error("[saved] Postgres clear failed: %v", err)
		return
	}

	const batchSize = 50
	for i := 0; i < len(s.parts); i += batchSize {
		end := i + batchSize
		if end > len(s.parts) {
			end = len(s.parts)
		}
		if err := s.insertBatch(i, s.parts[i:end]); err != nil {
			s.logger.Error("[saved] Postgres write failed — in-memory list is now ahead of the table: %v", err)
			return
		}
	}
}

func (s *PostgresStore) insertBatch(offset int, batch []*models.SavedPart) error {
	const cols = 18
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, p := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for j := range placeholders {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			offset+idx, p.PartName, p.EbayTitle, p.EbayURL, p.EbayPrice, p.BestListingImage,
			p.JunkyardPrice, strings.Join(p.JunkyardParts, "|"), p.ROI, string(p.ROIRating),
			p.VehicleType, p.Year, p.Make, p.Model, p.YoutubeLink, p.Notes, p.ManualEntry, p.SavedAt)
	}

	query := fmt.Sprintf(`
		INSERT INTO saved_parts (position, part_name, ebay_title, ebay_url, ebay_price,
			best_listing_image, junkyard_price, junkyard_parts, roi, roi_rating,
			vehicle_type, year, make, model, youtube_link, notes, manual_entry, saved_at)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := s.db.Exec(query, valueArgs...)
	return err
}

// Add appends a curated entry unless the same vehicle+part is already
// saved.
func (s *PostgresStore) Add(entry *models.SavedPart) bool {
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
func (s *PostgresStore) AddManual(partName string, junkyardPrice, soldPrice float64) *models.SavedPart {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := newManualEntry(partName, junkyardPrice, soldPrice, s.now())
	s.parts = append(s.parts, entry)
	s.persist()
	return entry
}

// Remove deletes the entry at index.
func (s *PostgresStore) Remove(index int) bool {
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
func (s *PostgresStore) UpdateNotes(index int, youtubeLink, notes string) bool {
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
func (s *PostgresStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.parts = []*models.SavedPart{}
	s.persist()
	s.logger.Info("[saved] Cleared all saved parts")
}

// All returns the saved parts in insertion order.
func (s *PostgresStore) All() []*models.SavedPart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*models.SavedPart{}, s.parts...)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
