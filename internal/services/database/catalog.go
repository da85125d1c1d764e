package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"visa-eligibility-engine/internal/catalog"
	"visa-eligibility-engine/internal/utils"
)

// Schema creates the catalog table. Each row holds one visa profile as JSONB.
const Schema = `
CREATE TABLE IF NOT EXISTS visa_catalog (
	code       TEXT PRIMARY KEY,
	position   INTEGER NOT NULL,
	version    TEXT NOT NULL,
	profile    JSONB NOT NULL,
	is_active  BOOLEAN NOT NULL DEFAULT TRUE,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_visa_catalog_active_position ON visa_catalog (is_active, position);
`

// ErrNoActiveEntries is returned when the table holds no active profiles.
var ErrNoActiveEntries = errors.New("no active catalog entries")

// CatalogRepository handles visa catalog database operations.
type CatalogRepository struct {
	db *DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// EnsureSchema creates the catalog table if it does not exist.
func (r *CatalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

// LoadCatalog reads every active profile in position order and validates
// them as one catalog document.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	query := `
		SELECT version, profile
		FROM visa_catalog
		WHERE is_active = true
		ORDER BY position, code`

	rows, err := r.db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var doc struct {
		Version string            `json:"version"`
		Entries []json.RawMessage `json:"entries"`
	}

	for rows.Next() {
		var version string
		var profile []byte
		if err := rows.Scan(&version, &profile); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		doc.Version = version
		doc.Entries = append(doc.Entries, json.RawMessage(profile))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog rows: %w", err)
	}
	if len(doc.Entries) == 0 {
		return nil, ErrNoActiveEntries
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble catalog document: %w", err)
	}

	return catalog.Parse(data)
}

// ReplaceCatalog swaps the stored catalog for c inside one transaction.
// Codes missing from c are deactivated rather than deleted.
func (r *CatalogRepository) ReplaceCatalog(ctx context.Context, c *catalog.Catalog, version string) (int, error) {
	entries := c.Entries()
	now := time.Now().UTC()

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE visa_catalog SET is_active = false, updated_at = $1`, now); err != nil {
			return fmt.Errorf("failed to deactivate catalog: %w", err)
		}

		batch := &pgx.Batch{}
		for i, entry := range entries {
			profile, err := json.Marshal(entry)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", entry.Code, err)
			}
			batch.Queue(`
				INSERT INTO visa_catalog (code, position, version, profile, is_active, updated_at)
				VALUES ($1, $2, $3, $4, true, $5)
				ON CONFLICT (code) DO UPDATE SET
					position = EXCLUDED.position,
					version = EXCLUDED.version,
					profile = EXCLUDED.profile,
					is_active = true,
					updated_at = EXCLUDED.updated_at`,
				entry.Code, i, version, profile, now,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for range entries {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to upsert catalog entry: %w", err)
			}
		}
		return results.Close()
	})
	if err != nil {
		return 0, err
	}

	utils.GetLogger().Info("Catalog stored",
		zap.String("version", version),
		zap.Int("entries", len(entries)),
	)

	return len(entries), nil
}

// CatalogSource loads the catalog from PostgreSQL.
type CatalogSource struct {
	Repo *CatalogRepository
}

// Load reads the active catalog.
func (s CatalogSource) Load(ctx context.Context) (*catalog.Catalog, error) {
	return s.Repo.LoadCatalog(ctx)
}

// Name identifies the source in logs and health output.
func (CatalogSource) Name() string {
	return "postgres:visa_catalog"
}
