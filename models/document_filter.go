package models

// DocumentFilter narrows a server-side document listing. The zero value
// selects the whole collection.
type DocumentFilter struct {
	// IDs limits the result to documents with the given ids when
	// non-empty.
	IDs []string

	// Category limits the result to documents in the given category when
	// non-empty.
	Category string
}
