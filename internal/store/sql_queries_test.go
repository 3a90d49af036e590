// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildUpsertDocumentQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpsertDocumentQuery("tasks", "t1", `{"a":1}`, at)
	require.NoError(t, err)

	assert.Equal(t, []any{"tasks", "t1", `{"a":1}`, at, at}, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into documents (collection,id,payload,created_at,updated_at)")
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5)")
	assert.Contains(t, q, "on conflict (collection, id) do update")
	assert.NotContains(t, q, "returning")
}

func Test_buildUpdateDocumentQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpdateDocumentQuery("tasks", "t1", `{}`, at)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE documents SET payload = $1, updated_at = $2 WHERE collection = $3 AND id = $4", query)
	assert.Equal(t, []any{`{}`, at, "tasks", "t1"}, args)
}

func Test_buildDeleteDocumentQuery(t *testing.T) {
	query, args, err := buildDeleteDocumentQuery("tasks", "t1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM documents WHERE collection = $1 AND id = $2", query)
	assert.Equal(t, []any{"tasks", "t1"}, args)
}

func Test_buildSelectQueries(t *testing.T) {
	query, args, err := buildSelectDocumentQuery("tasks", "t1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT collection, id, payload, created_at, updated_at FROM documents WHERE collection = $1 AND id = $2", query)
	assert.Equal(t, []any{"tasks", "t1"}, args)

	query, args, err = buildListDocumentsQuery("tasks")
	require.NoError(t, err)
	assert.Equal(t, "SELECT collection, id, payload, created_at, updated_at FROM documents WHERE collection = $1 ORDER BY id", query)
	assert.Equal(t, []any{"tasks"}, args)
}
