package app

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

//go:embed init.sql
var initSQL string

// Store persists imported inventories and the user's archive marks in a
// sqlite database. One import batch is "current" at a time; queries operate
// on it.
type Store struct {
	db *sql.DB
}

func OpenStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", dbPath, err)
	}
	db.Exec(`PRAGMA journal_mode = WAL`)
	db.Exec(`PRAGMA busy_timeout = 5000`)

	if _, err := db.Exec(initSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ImportRecords saves an enriched batch and makes it the current import.
// Returns the new import id.
func (s *Store) ImportRecords(ctx context.Context, source string, records []models.Record) (string, error) {
	importID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO items(import_id, name, kind, url, last_updated, editor_name,
            editor_email, folder_path, content_count, days_since_update,
            age_bucket, folder_depth, parent_path)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, r := range records {
		var updated int64
		if !r.LastUpdated.IsZero() {
			updated = r.LastUpdated.Unix()
		}
		var days sql.NullInt64
		if r.DaysSinceUpdate != nil {
			days = sql.NullInt64{Int64: int64(*r.DaysSinceUpdate), Valid: true}
		}
		_, err = stmt.ExecContext(ctx,
			importID, r.Name, string(r.Kind), r.URL, updated, r.EditorName,
			r.EditorEmail, r.FolderPath, r.ContentCount, days,
			string(r.AgeBucket), r.FolderDepth, r.ParentPath)
		if err != nil {
			return "", err
		}
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO imports(id, source, row_count, imported_at)
        VALUES (?, ?, ?, ?)
    `, importID, source, len(records), time.Now().Unix())
	if err != nil {
		return "", err
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO metadata(key, value)
        VALUES ('current_import', ?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value
    `, importID)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit import: %w", err)
	}
	committed = true

	log.Printf("Imported %d records from %s as %s", len(records), source, importID)
	return importID, nil
}

func (s *Store) CurrentImport(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key='current_import'`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListRecords returns the current import's records that match the filter,
// in insertion order.
func (s *Store) ListRecords(ctx context.Context, filter *Filter) ([]models.Record, error) {
	importID, err := s.CurrentImport(ctx)
	if err != nil {
		return nil, err
	}
	if importID == "" {
		return nil, nil
	}

	conditions := []string{"import_id = ?"}
	args := []any{importID}

	if filter != nil {
		if filter.Kind != "" {
			conditions = append(conditions, "kind = ?")
			args = append(args, string(filter.Kind))
		}
		if filter.Search != "" {
			conditions = append(conditions, "name LIKE ? COLLATE NOCASE")
			args = append(args, "%"+filter.Search+"%")
		}
		if !filter.UpdatedFrom.IsZero() {
			conditions = append(conditions, "last_updated >= ?")
			args = append(args, filter.UpdatedFrom.Unix())
		}
		if !filter.UpdatedTo.IsZero() {
			conditions = append(conditions, "last_updated > 0 AND last_updated <= ?")
			args = append(args, filter.UpdatedTo.Unix())
		}
		if len(filter.AgeBuckets) > 0 {
			placeholders := strings.Repeat("?,", len(filter.AgeBuckets))
			conditions = append(conditions, fmt.Sprintf("age_bucket IN (%s)", placeholders[:len(placeholders)-1]))
			for _, b := range filter.AgeBuckets {
				args = append(args, string(b))
			}
		}
	}

	sqlQuery := fmt.Sprintf(`
        SELECT name, kind, url, last_updated, editor_name, editor_email,
            folder_path, content_count, days_since_update, age_bucket,
            folder_depth, parent_path
        FROM items
        WHERE %s
        ORDER BY id
    `, strings.Join(conditions, " AND "))

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (models.Record, error) {
	var r models.Record
	var kind, bucket string
	var updated int64
	var days sql.NullInt64

	err := rows.Scan(&r.Name, &kind, &r.URL, &updated, &r.EditorName,
		&r.EditorEmail, &r.FolderPath, &r.ContentCount, &days,
		&bucket, &r.FolderDepth, &r.ParentPath)
	if err != nil {
		return models.Record{}, err
	}

	r.Kind = models.Kind(kind)
	r.AgeBucket = models.AgeBucket(bucket)
	if updated > 0 {
		r.LastUpdated = time.Unix(updated, 0).UTC()
	}
	if days.Valid {
		d := int(days.Int64)
		r.DaysSinceUpdate = &d
	}
	return r, nil
}

// Mark flags an item name for archiving. Marking the same name twice is a
// no-op.
func (s *Store) Mark(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO archive_marks(name, marked_at)
        VALUES (?, ?)
        ON CONFLICT(name) DO NOTHING
    `, name, time.Now().Unix())
	return err
}

// MarkAll flags every name in one transaction, the "mark whole suggestion
// group" operation.
func (s *Store) MarkAll(ctx context.Context, names []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO archive_marks(name, marked_at)
        VALUES (?, ?)
        ON CONFLICT(name) DO NOTHING
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, name := range names {
		if _, err := stmt.ExecContext(ctx, name, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) Unmark(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM archive_marks WHERE name = ?`, name)
	return err
}

func (s *Store) ClearMarks(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM archive_marks`)
	return err
}

func (s *Store) ListMarks(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM archive_marks ORDER BY marked_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
