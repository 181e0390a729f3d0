// Package storage provides the persistent image gallery and request log.
package storage

import (
	"errors"

	"github.com/genz27/Nano-Gaallery/internal/domain"
)

// Common errors returned by storage operations
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrStorageClosed = errors.New("storage is closed")
)

// Storage defines the interface for persistent data storage.
// Gallery records are append-only: there is no update or single-record
// delete, only a bulk clear.
type Storage interface {
	// Gallery operations
	AppendImage(img *domain.GeneratedImage) error
	ListImages() ([]*domain.GeneratedImage, error) // newest first
	ClearImages() error

	// Request logging operations
	LogRequest(log *RequestLog) error
	GetRequestLogs(limit int) ([]*RequestLog, error) // newest first

	// Maintenance operations
	Close() error
}

// NewSQLiteStorage creates a new SQLite storage instance.
// This is the main factory function for creating storage.
func NewSQLiteStorage(dbPath string) (Storage, error) {
	return newSQLite(dbPath)
}
