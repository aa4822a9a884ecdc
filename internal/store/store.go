// Package store provides PostgreSQL persistence for extracted resume records.
package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aravindh/hirelens/internal/types"
)

// Store is the persistence surface the pipeline depends on. Records are
// written once at extraction time and read back by normalized filename.
type Store interface {
	Insert(ctx context.Context, record types.StoredRecord) (uuid.UUID, error)
	FindByFileName(ctx context.Context, fileName string) (types.StoredRecord, error)
	Close()
}

// NotFoundError indicates no stored record matches the requested filename.
type NotFoundError struct {
	FileName string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no resume record found for %q", e.FileName)
}

// NormalizeFileName derives the lookup key from a user-supplied name.
// Names without a recognized document extension get ".docx" appended, so
// a search for "resume" finds the record stored as "resume.docx".
func NormalizeFileName(name string) string {
	name = strings.TrimSpace(name)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".docx", ".doc":
		return name
	default:
		return name + ".docx"
	}
}
