package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tutostrucoscode/GymMetrics/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const PostgresSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	key        TEXT NOT NULL,
	body       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, key)
);
CREATE INDEX IF NOT EXISTS documents_body_idx ON documents USING GIN (body jsonb_path_ops);
`

var _ Store = (*PostgresStore)(nil)

// PostgresStore keeps every collection in one jsonb table.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetDocument(ctx context.Context, collection, key string) (_ Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.postgres.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))

	var body []byte
	if err := s.db.QueryRow(
		ctx,
		`SELECT body FROM documents WHERE collection = $1 AND key = $2`,
		collection, key,
	).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("get document %s/%s: %w", collection, key, err)
	}

	return Document{Key: key, Data: body}, nil
}

func (s *PostgresStore) SetDocument(ctx context.Context, collection, key string, value any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.postgres.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))

	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal document %s/%s: %w", collection, key, err)
	}

	if _, err := s.db.Exec(
		ctx,
		`INSERT INTO documents (collection, key, body, updated_at)
		VALUES ($1, $2, $3::jsonb, now())
		ON CONFLICT (collection, key) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`,
		collection, key, string(body),
	); err != nil {
		return fmt.Errorf("set document %s/%s: %w", collection, key, err)
	}

	return nil
}

func (s *PostgresStore) UpdateDocument(ctx context.Context, collection, key string, fields map[string]any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.postgres.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("collection", collection))

	if err := validateFields(fields); err != nil {
		return err
	}

	patch, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal update %s/%s: %w", collection, key, err)
	}

	tag, err := s.db.Exec(
		ctx,
		`UPDATE documents SET body = body || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND key = $2`,
		collection, key, string(patch),
	)
	if err != nil {
		return fmt.Errorf("update document %s/%s: %w", collection, key, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PostgresStore) QueryCollection(
	ctx context.Context,
	collection string,
	filters []Filter,
	orderBy *OrderBy,
) (_ []Document, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "docstore.postgres.query")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("collection", collection),
		attribute.Int("filters", len(filters)),
	)

	if err := validateQuery(filters, orderBy); err != nil {
		return nil, err
	}

	query, args, err := buildPostgresQuery(collection, filters, orderBy)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var body []byte
		if err := rows.Scan(&doc.Key, &body); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc.Data = body
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query collection %s rows: %w", collection, err)
	}

	return docs, nil
}

func buildPostgresQuery(collection string, filters []Filter, orderBy *OrderBy) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT key, body FROM documents WHERE collection = $1`)
	args := []any{collection}

	for _, f := range filters {
		value, err := json.Marshal(f.Value)
		if err != nil {
			return "", nil, fmt.Errorf("marshal filter value for %s: %w", f.Field, err)
		}
		args = append(args, f.Field, string(value))
		fmt.Fprintf(&sb, ` AND body -> $%d::text = $%d::jsonb`, len(args)-1, len(args))
	}

	if orderBy != nil {
		args = append(args, orderBy.Field)
		fmt.Fprintf(&sb, ` ORDER BY body -> $%d::text`, len(args))
		if orderBy.Desc {
			sb.WriteString(` DESC`)
		}
		sb.WriteString(`, key`)
	} else {
		sb.WriteString(` ORDER BY key`)
	}

	return sb.String(), args, nil
}
