package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cv-builder/internal/model"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// documentRowID is the fixed primary key of the single cv_documents row.
const documentRowID = "default"

// PostgresStore keeps the document as one JSONB row, overwritten on save.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context) (*model.Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM cv_documents WHERE id = $1`, documentRowID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading document row: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding stored document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

func (s *PostgresStore) Save(ctx context.Context, doc *model.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	_, err = s.pool.Exec(ctx, `INSERT INTO cv_documents (id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		documentRowID, raw)
	if err != nil {
		return fmt.Errorf("writing document row: %w", err)
	}
	return nil
}
