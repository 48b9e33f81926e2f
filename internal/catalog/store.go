package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"scentid/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; existing databases must then be recreated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database.
func Open(cfg *config.Config) (*Store, error) {
	dbPath := cfg.Paths.CatalogDB
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s and re-import)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// Upsert inserts the record or, when the handle already exists, replaces its
// mutable fields. The record's ID is populated on return.
func (s *Store) Upsert(ctx context.Context, record *Record) error {
	imagesJSON, err := json.Marshal(record.Images)
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}
	brandsJSON, err := json.Marshal(emptyAsList(record.Brands))
	if err != nil {
		return fmt.Errorf("encode brands: %w", err)
	}
	analysisJSON, err := encodeAnalysis(record.Analysis)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO products (handle, title, description, images_json, brands_json, primary_brand, analysis_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(handle) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			images_json = excluded.images_json,
			brands_json = excluded.brands_json,
			primary_brand = excluded.primary_brand,
			analysis_json = excluded.analysis_json,
			updated_at = excluded.updated_at`,
		record.Handle, record.Title, record.Description,
		string(imagesJSON), string(brandsJSON), record.PrimaryBrand,
		analysisJSON, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", record.Handle, err)
	}

	// last_insert_rowid is unreliable on the conflict-update path, so the id
	// is always resolved by handle.
	row := s.db.QueryRowContext(ctx, "SELECT id FROM products WHERE handle = ?", record.Handle)
	if err := row.Scan(&record.ID); err != nil {
		return fmt.Errorf("resolve product id: %w", err)
	}
	return nil
}

// List returns every record ordered by id, preserving first-seen order for
// stable match tie-breaking.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, handle, title, description, images_json, brands_json, primary_brand, analysis_json
		FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetByHandle fetches one record. Returns ErrNotFound when absent.
func (s *Store) GetByHandle(ctx context.Context, handle string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, handle, title, description, images_json, brands_json, primary_brand, analysis_json
		FROM products WHERE handle = ?`, handle)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, handle)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SetMainImage replaces the record's primary image reference.
func (s *Store) SetMainImage(ctx context.Context, id int64, path string) error {
	record, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}
	if len(record.Images.Main) == 0 {
		record.Images.Main = []string{path}
	} else {
		record.Images.Main[0] = path
	}
	imagesJSON, err := json.Marshal(record.Images)
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}
	return s.update(ctx, id, "images_json", string(imagesJSON))
}

// SetAnalysis attaches analysis metadata to the record.
func (s *Store) SetAnalysis(ctx context.Context, id int64, analysis *Analysis) error {
	encoded, err := encodeAnalysis(analysis)
	if err != nil {
		return err
	}
	return s.update(ctx, id, "analysis_json", encoded)
}

func (s *Store) update(ctx context.Context, id int64, column string, value any) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE products SET %s = ?, updated_at = ? WHERE id = ?", column),
		value, now, id)
	if err != nil {
		return fmt.Errorf("update product %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return nil
}

func (s *Store) getByID(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, handle, title, description, images_json, brands_json, primary_brand, analysis_json
		FROM products WHERE id = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var record Record
	var imagesJSON, brandsJSON string
	var analysisJSON sql.NullString
	if err := row.Scan(&record.ID, &record.Handle, &record.Title, &record.Description,
		&imagesJSON, &brandsJSON, &record.PrimaryBrand, &analysisJSON); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(imagesJSON), &record.Images); err != nil {
		return Record{}, fmt.Errorf("decode images for %s: %w", record.Handle, err)
	}
	if err := json.Unmarshal([]byte(brandsJSON), &record.Brands); err != nil {
		return Record{}, fmt.Errorf("decode brands for %s: %w", record.Handle, err)
	}
	if analysisJSON.Valid && analysisJSON.String != "" {
		record.Analysis = &Analysis{}
		if err := json.Unmarshal([]byte(analysisJSON.String), record.Analysis); err != nil {
			return Record{}, fmt.Errorf("decode analysis for %s: %w", record.Handle, err)
		}
	}
	return record, nil
}

func encodeAnalysis(analysis *Analysis) (any, error) {
	if analysis == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}
	return string(encoded), nil
}

func emptyAsList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
