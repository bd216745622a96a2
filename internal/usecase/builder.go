// Package usecase holds the application services that sit between the HTTP
// adapter and the storage gateway.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"cv-builder/internal/adapter/repository"
	"cv-builder/internal/form"
	"cv-builder/internal/model"
	"cv-builder/internal/strength"
)

// BackupFilename is the download name for exported backups.
const BackupFilename = "cv-builder-backup.json"

// Builder owns the single résumé document: loading, collecting form posts,
// list mutations, and backup import/export.
type Builder struct {
	store repository.Store
	log   *zap.Logger
}

func NewBuilder(store repository.Store, log *zap.Logger) *Builder {
	return &Builder{store: store, log: log}
}

// LoadOrDefault returns the stored document. On first run, or when the stored
// record cannot be decoded, it falls back to the sample document so the editor
// always has something to show. The fallback is not persisted until the next
// save.
func (b *Builder) LoadOrDefault(ctx context.Context) *model.Document {
	doc, err := b.store.Load(ctx)
	switch {
	case err == nil:
		return doc
	case errors.Is(err, repository.ErrNotFound):
		return model.Default()
	default:
		b.log.Warn("stored document unreadable, starting from sample data", zap.Error(err))
		return model.Default()
	}
}

// SaveForm collects the posted editor form into a full document snapshot,
// persists it, and returns the document with its recomputed strength score.
func (b *Builder) SaveForm(ctx context.Context, values url.Values) (*model.Document, strength.Score, error) {
	doc := form.Collect(values)
	if err := b.store.Save(ctx, doc); err != nil {
		return nil, strength.Score{}, fmt.Errorf("saving document: %w", err)
	}
	return doc, strength.Calculate(doc), nil
}

// AddSectionItem appends a blank entry to the named section and persists the
// result.
func (b *Builder) AddSectionItem(ctx context.Context, section form.Section) (*model.Document, error) {
	doc := b.LoadOrDefault(ctx)
	if err := form.AddItem(doc, section); err != nil {
		return nil, err
	}
	if err := b.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return doc, nil
}

// RemoveSectionItem deletes the entry at index from the named section.
// Remaining entries keep their relative order.
func (b *Builder) RemoveSectionItem(ctx context.Context, section form.Section, index int) (*model.Document, error) {
	doc := b.LoadOrDefault(ctx)
	if err := form.RemoveItem(doc, section, index); err != nil {
		return nil, err
	}
	if err := b.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return doc, nil
}

// ImportBackup validates a backup payload against the document schema and, only
// if it passes, replaces the stored document wholesale. A failed import leaves
// the current document untouched.
func (b *Builder) ImportBackup(ctx context.Context, raw []byte) (*model.Document, error) {
	doc, err := model.ValidatePayload(raw)
	if err != nil {
		return nil, err
	}
	if err := b.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving imported document: %w", err)
	}
	b.log.Info("backup imported")
	return doc, nil
}

// ExportBackup serializes the current document as indented JSON suitable for a
// later import.
func (b *Builder) ExportBackup(ctx context.Context) ([]byte, error) {
	doc := b.LoadOrDefault(ctx)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// Score recomputes the strength of the current document.
func (b *Builder) Score(ctx context.Context) strength.Score {
	return strength.Calculate(b.LoadOrDefault(ctx))
}
