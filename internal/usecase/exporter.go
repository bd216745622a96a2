package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cv-builder/internal/render"
)

// Renderer converts a self-contained HTML page into an A4 PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// PDFExporter renders the printable résumé page to a PDF artifact.
type PDFExporter struct {
	builder   *Builder
	projector *render.Projector
	renderer  Renderer
	artifacts *ArtifactStore
	log       *zap.Logger
}

func NewPDFExporter(builder *Builder, projector *render.Projector, renderer Renderer, artifacts *ArtifactStore, log *zap.Logger) *PDFExporter {
	return &PDFExporter{
		builder:   builder,
		projector: projector,
		renderer:  renderer,
		artifacts: artifacts,
		log:       log,
	}
}

// Generate renders the current document to a PDF and returns its artifact id.
func (e *PDFExporter) Generate(ctx context.Context) (string, error) {
	doc := e.builder.LoadOrDefault(ctx)
	html, err := e.projector.PrintablePage(doc)
	if err != nil {
		return "", fmt.Errorf("rendering printable page: %w", err)
	}
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return "", fmt.Errorf("rendering pdf: %w", err)
	}
	id := e.artifacts.Put(pdf)
	e.log.Info("pdf generated", zap.String("artifact", id), zap.Int("bytes", len(pdf)))
	return id, nil
}

// Artifacts exposes the backing store for download and release handlers.
func (e *PDFExporter) Artifacts() *ArtifactStore {
	return e.artifacts
}
