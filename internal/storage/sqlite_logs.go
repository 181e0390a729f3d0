package storage

import (
	"database/sql"
	"time"
)

// LogRequest stores a request log entry.
func (s *sqliteStorage) LogRequest(log *RequestLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	if log == nil || log.RequestID == "" {
		return ErrInvalidInput
	}

	if log.ID == "" {
		log.ID = generateID("log")
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO request_logs (id, request_id, model, prompt_tokens, image_count, status_code, error_message, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, log.ID, log.RequestID, log.Model, log.PromptTokens, log.ImageCount,
		log.StatusCode, nullIfEmpty(log.ErrorMessage), log.DurationMs, log.CreatedAt)

	return err
}

// GetRequestLogs returns the most recent request logs, newest first.
func (s *sqliteStorage) GetRequestLogs(limit int) ([]*RequestLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStorageClosed
	}

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, request_id, model, prompt_tokens, image_count, status_code, error_message, duration_ms, created_at
		FROM request_logs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*RequestLog
	for rows.Next() {
		log := &RequestLog{}
		var errMsg sql.NullString
		if err := rows.Scan(&log.ID, &log.RequestID, &log.Model, &log.PromptTokens,
			&log.ImageCount, &log.StatusCode, &errMsg, &log.DurationMs, &log.CreatedAt); err != nil {
			return nil, err
		}
		log.ErrorMessage = errMsg.String
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
