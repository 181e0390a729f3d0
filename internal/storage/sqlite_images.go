package storage

import (
	"github.com/genz27/Nano-Gaallery/internal/domain"
)

// AppendImage stores a new gallery record. Records are immutable once
// appended; there is no update path.
func (s *sqliteStorage) AppendImage(img *domain.GeneratedImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	if img == nil || img.ID == "" || img.URL == "" {
		return ErrInvalidInput
	}

	_, err := s.db.Exec(`
		INSERT INTO images (id, url, prompt, model, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, img.ID, img.URL, img.Prompt, img.Model, img.Timestamp)

	return err
}

// ListImages returns all gallery records, newest first. Records from the
// same batch share near-identical timestamps, so rowid breaks ties to keep
// insertion order stable within a batch.
func (s *sqliteStorage) ListImages() ([]*domain.GeneratedImage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStorageClosed
	}

	rows, err := s.db.Query(`
		SELECT id, url, prompt, model, timestamp
		FROM images
		ORDER BY timestamp DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*domain.GeneratedImage
	for rows.Next() {
		img := &domain.GeneratedImage{}
		if err := rows.Scan(&img.ID, &img.URL, &img.Prompt, &img.Model, &img.Timestamp); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// ClearImages removes every gallery record. This is the only destruction
// path for generated images.
func (s *sqliteStorage) ClearImages() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	_, err := s.db.Exec("DELETE FROM images")
	return err
}
