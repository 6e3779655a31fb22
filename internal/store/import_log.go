package store

import (
	"fmt"
	"time"
)

// ImportLog one import attempt
type ImportLog struct {
	ID            int64     `json:"id"`
	SalespersonID string    `json:"salespersonId"`
	Filename      string    `json:"filename"`
	Status        string    `json:"status"` // imported/error
	ImportedRows  int       `json:"importedRows"`
	SkippedRows   int       `json:"skippedRows"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InsertImportLog records an import attempt.
func (s *Store) InsertImportLog(log *ImportLog) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO import_logs (salesperson_id, filename, status, imported_rows, skipped_rows, message)
		VALUES (?, ?, ?, ?, ?, ?)
	`, log.SalespersonID, log.Filename, log.Status, log.ImportedRows, log.SkippedRows, log.Message)
	if err != nil {
		return 0, fmt.Errorf("failed to insert import log: %w", err)
	}
	return result.LastInsertId()
}

// ListImportLogs newest first
func (s *Store) ListImportLogs(limit int) ([]*ImportLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, salesperson_id, filename, status, imported_rows, skipped_rows, COALESCE(message, ''), created_at
		FROM import_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*ImportLog
	for rows.Next() {
		l := &ImportLog{}
		if err := rows.Scan(&l.ID, &l.SalespersonID, &l.Filename, &l.Status, &l.ImportedRows, &l.SkippedRows, &l.Message, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
