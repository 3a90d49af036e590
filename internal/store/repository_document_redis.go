package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-site-sync/internal/logger"
	"github.com/MKhiriev/go-site-sync/models"
	"github.com/redis/go-redis/v9"
)

// redisDocumentRepository keeps every collection in one hash, "docs:<name>",
// whose fields are document ids and whose values are JSON documents.
type redisDocumentRepository struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
	now    func() time.Time
}

// NewRedisDocumentRepository connects to redisURL and verifies the connection.
func NewRedisDocumentRepository(ctx context.Context, redisURL string, log *logger.Logger) (DocumentRepository, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisDocumentRepository").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisDocumentRepository").Msg("connected to redis successfully")

	return NewRedisDocumentRepositoryWithClient(client, log), nil
}

// NewRedisDocumentRepositoryWithClient wraps an existing client.
func NewRedisDocumentRepositoryWithClient(client *redis.Client, log *logger.Logger) DocumentRepository {
	return &redisDocumentRepository{
		client: client,
		prefix: "docs:",
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *redisDocumentRepository) key(collection string) string {
	return r.prefix + collection
}

func (r *redisDocumentRepository) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	at := r.now()
	doc.CreatedAt = at
	doc.UpdatedAt = at

	existing, err := r.Get(ctx, doc.Collection, doc.ID)
	switch {
	case err == nil:
		doc.CreatedAt = existing.CreatedAt
	case !errors.Is(err, ErrDocumentNotFound):
		return models.Document{}, err
	}

	return r.put(ctx, "redisDocumentRepository.Create", doc)
}

func (r *redisDocumentRepository) Update(ctx context.Context, doc models.Document) (models.Document, error) {
	existing, err := r.Get(ctx, doc.Collection, doc.ID)
	if err != nil {
		return models.Document{}, err
	}

	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = r.now()
	return r.put(ctx, "redisDocumentRepository.Update", doc)
}

func (r *redisDocumentRepository) put(ctx context.Context, fn string, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	doc.Payload = models.ClonePayload(doc.Payload)
	data, err := json.Marshal(doc)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	if err := r.client.HSet(ctx, r.key(doc.Collection), doc.ID, data).Err(); err != nil {
		log.Err(err).
			Str("func", fn).
			Str("collection", doc.Collection).
			Str("id", doc.ID).
			Msg("failed to store document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return doc, nil
}

func (r *redisDocumentRepository) Delete(ctx context.Context, collection, id string) error {
	if err := r.client.HDel(ctx, r.key(collection), id).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisDocumentRepository.Delete").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to delete document")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

func (r *redisDocumentRepository) Get(ctx context.Context, collection, id string) (models.Document, error) {
	raw, err := r.client.HGet(ctx, r.key(collection), id).Result()
	if errors.Is(err, redis.Nil) {
		return models.Document{}, ErrDocumentNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisDocumentRepository.Get").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to read document")
		return models.Document{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return decodeRedisDocument(raw)
}

func (r *redisDocumentRepository) List(ctx context.Context, collection string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	all, err := r.client.HGetAll(ctx, r.key(collection)).Result()
	if err != nil {
		log.Err(err).
			Str("func", "redisDocumentRepository.List").
			Str("collection", collection).
			Msg("failed to list documents")
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	docs := make([]models.Document, 0, len(all))
	for id, raw := range all {
		doc, decodeErr := decodeRedisDocument(raw)
		if decodeErr != nil {
			log.Err(decodeErr).
				Str("func", "redisDocumentRepository.List").
				Str("collection", collection).
				Str("id", id).
				Msg("skipping undecodable document")
			continue
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (r *redisDocumentRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisDocumentRepository) Close() error {
	return r.client.Close()
}

func decodeRedisDocument(raw string) (models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	if doc.Payload == nil {
		doc.Payload = models.Payload{}
	}
	return doc, nil
}
