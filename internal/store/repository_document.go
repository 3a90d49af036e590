package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/models"
)

// documentRepository is the SQL implementation of [DocumentRepository]. The
// same queries run against sqlite3 and PostgreSQL; payloads are stored as
// JSON text.
type documentRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *documentRepository) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	payload, err := encodePayload(doc.Payload)
	if err != nil {
		return models.Document{}, err
	}

	at := r.now()
	query, args, err := buildUpsertDocumentQuery(doc.Collection, doc.ID, payload, at)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Create").Msg("failed to build query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.Create").
			Str("collection", doc.Collection).
			Str("id", doc.ID).
			Str("sqlstate", postgresError(err)).
			Msg("failed to upsert document")
		return models.Document{}, r.wrapErr(ErrExecutingStatement, err)
	}

	return r.Get(ctx, doc.Collection, doc.ID)
}

func (r *documentRepository) Update(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	payload, err := encodePayload(doc.Payload)
	if err != nil {
		return models.Document{}, err
	}

	at := r.now()
	query, args, err := buildUpdateDocumentQuery(doc.Collection, doc.ID, payload, at)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Update").Msg("failed to build query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("collection", doc.Collection).
			Str("id", doc.ID).
			Str("sqlstate", postgresError(err)).
			Msg("failed to update document")
		return models.Document{}, r.wrapErr(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Document{}, ErrDocumentNotFound
	}

	return r.Get(ctx, doc.Collection, doc.ID)
}

func (r *documentRepository) Delete(ctx context.Context, collection, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(collection, id)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.Delete").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to delete document")
		return r.wrapErr(ErrExecutingStatement, err)
	}

	return nil
}

func (r *documentRepository) Get(ctx context.Context, collection, id string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(collection, id)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Get").Msg("failed to build query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Document{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Get").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to read document")
		return models.Document{}, r.wrapErr(ErrScanningRow, err)
	}

	return doc, nil
}

// List returns every document of collection ordered by id. An unknown
// collection yields an empty slice.
func (r *documentRepository) List(ctx context.Context, collection string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDocumentsQuery(collection)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.List").
			Str("collection", collection).
			Str("sqlstate", postgresError(err)).
			Msg("failed to execute query for listing documents")
		return nil, r.wrapErr(ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0, 50)
	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.List").
				Str("collection", collection).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		docs = append(docs, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.List").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return docs, nil
}

func (r *documentRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r *documentRepository) Close() error {
	return r.DB.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc     models.Document
		payload string
	)
	if err := row.Scan(&doc.Collection, &doc.ID, &payload, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return models.Document{}, err
	}

	decoded, err := decodePayload(payload)
	if err != nil {
		return models.Document{}, err
	}
	doc.Payload = decoded
	doc.CreatedAt = doc.CreatedAt.UTC()
	doc.UpdatedAt = doc.UpdatedAt.UTC()
	return doc, nil
}

func encodePayload(p models.Payload) (string, error) {
	if p == nil {
		p = models.Payload{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return string(data), nil
}

func decodePayload(s string) (models.Payload, error) {
	p := models.Payload{}
	if s == "" {
		return p, nil
	}
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return p, nil
}
