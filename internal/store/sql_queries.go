package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-expense-keeper/models"
)

const documentsTable = "documents"

const (
	insertDocumentQuery = `INSERT INTO documents (id, client_id, doc) VALUES ($1, $2, $3);`

	updateDocumentQuery = `UPDATE documents
		SET doc = $1, client_id = $2, updated_at = NOW()
		WHERE id = $3;`

	removeDocumentQuery = `DELETE FROM documents
		WHERE id = $1;`

	findDocumentByIDQuery = `SELECT doc FROM documents
		WHERE id = $1;`
)

// psql renders dynamic queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectDocumentsQuery builds the document listing query. The zero
// filter selects the whole collection; a non-empty IDs slice narrows the
// result with an IN clause and a non-empty category adds an equality match
// on the document's category key.
func buildSelectDocumentsQuery(filter models.DocumentFilter) (string, []any, error) {
	builder := psql.
		Select("doc").
		From(documentsTable).
		OrderBy("created_at", "id")

	if len(filter.IDs) > 0 {
		builder = builder.Where(sq.Eq{"id": filter.IDs})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"doc->>'category'": filter.Category})
	}

	return builder.ToSql()
}
