package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	key        TEXT NOT NULL,
	body       TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (collection, key)
);
`

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore is the embedded driver, used for local runs and the admin CLI.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database file at path. Use ":memory:" for a
// throwaway store.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// single writer; also keeps ":memory:" databases on one connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetDocument(ctx context.Context, collection, key string) (_ Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.sqlite.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))

	var body string
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT body FROM documents WHERE collection = ? AND key = ?`,
		collection, key,
	).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("get document %s/%s: %w", collection, key, err)
	}

	return Document{Key: key, Data: json.RawMessage(body)}, nil
}

func (s *SQLiteStore) SetDocument(ctx context.Context, collection, key string, value any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.sqlite.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))

	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal document %s/%s: %w", collection, key, err)
	}

	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO documents (collection, key, body, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		collection, key, string(body), time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("set document %s/%s: %w", collection, key, err)
	}

	return nil
}

func (s *SQLiteStore) UpdateDocument(ctx context.Context, collection, key string, fields map[string]any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.sqlite.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))

	if err := validateFields(fields); err != nil {
		return err
	}

	// json_patch would drop null fields, so each field is set on its own
	setExpr := "body"
	var args []any
	for name, value := range fields {
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal update field %s: %w", name, err)
		}
		setExpr = fmt.Sprintf("json_set(%s, ?, json(?))", setExpr)
		args = append(args, "$."+name, string(encoded))
	}
	args = append(args, time.Now().UTC().Format(time.RFC3339Nano), collection, key)

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE documents SET body = `+setExpr+`, updated_at = ? WHERE collection = ? AND key = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update document %s/%s: %w", collection, key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update document %s/%s rows affected: %w", collection, key, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *SQLiteStore) QueryCollection(
	ctx context.Context,
	collection string,
	filters []Filter,
	orderBy *OrderBy,
) (_ []Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.sqlite.query")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))

	if err := validateQuery(filters, orderBy); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT key, body FROM documents WHERE collection = ?`)
	args := []any{collection}
	for _, f := range filters {
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal filter value for %s: %w", f.Field, err)
		}
		// both sides go through json_extract so booleans and numbers compare alike
		sb.WriteString(` AND json_extract(body, ?) IS json_extract(?, '$')`)
		args = append(args, "$."+f.Field, string(value))
	}
	if orderBy != nil {
		sb.WriteString(` ORDER BY json_extract(body, ?)`)
		args = append(args, "$."+orderBy.Field)
		if orderBy.Desc {
			sb.WriteString(` DESC`)
		}
		sb.WriteString(`, key`)
	} else {
		sb.WriteString(` ORDER BY key`)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var key, body string
		if err := rows.Scan(&key, &body); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, Document{Key: key, Data: json.RawMessage(body)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query collection %s rows: %w", collection, err)
	}

	return docs, nil
}
