package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const documentsTable = "documents"

var documentColumns = []string{"collection", "id", "payload", "created_at", "updated_at"}

// psql builds $N placeholders, which both pgx and sqlite3 accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpsertDocumentQuery inserts a document or replaces the payload of an
// existing one, keeping its creation time.
func buildUpsertDocumentQuery(collection, id, payload string, at time.Time) (string, []any, error) {
	return psql.Insert(documentsTable).
		Columns(documentColumns...).
		Values(collection, id, payload, at, at).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
}

func buildUpdateDocumentQuery(collection, id, payload string, at time.Time) (string, []any, error) {
	return psql.Update(documentsTable).
		Set("payload", payload).
		Set("updated_at", at).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
}

func buildDeleteDocumentQuery(collection, id string) (string, []any, error) {
	return psql.Delete(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
}

func buildSelectDocumentQuery(collection, id string) (string, []any, error) {
	return psql.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
}

func buildListDocumentsQuery(collection string) (string, []any, error) {
	return psql.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"collection": collection}).
		OrderBy("id").
		ToSql()
}
