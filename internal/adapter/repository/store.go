// Package repository persists the single CV document under a fixed key.
// Last write wins; there is no versioning and no merge.
package repository

import (
	"context"
	"errors"

	"cv-builder/internal/model"
)

// ErrNotFound reports that no document has ever been saved. Distinct from a
// decode error on a corrupt record.
var ErrNotFound = errors.New("document not found")

type Store interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) error
}
