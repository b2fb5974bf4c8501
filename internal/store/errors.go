package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrExpenseNotFound is returned when a query or delete targets an
	// expense id that does not exist in the store.
	ErrExpenseNotFound = errors.New("expense was not found")

	// ErrExpenseNotSaved is returned when a write completes without error
	// but the number of affected rows is zero, indicating that nothing was
	// actually persisted.
	ErrExpenseNotSaved = errors.New("expense was not saved")

	// ErrDocumentExists is returned when an insert targets a document id
	// that is already present in the remote collection.
	ErrDocumentExists = errors.New("document already exists")

	// ErrDocumentNotFound is returned when a server-side lookup, update,
	// or delete targets a document id the collection does not hold.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrPrefNotFound is returned when a preference key has no stored value.
	ErrPrefNotFound = errors.New("preference was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingRecord is returned when a stored document column cannot be
	// decoded back into an expense record.
	ErrDecodingRecord = errors.New("failed to decode stored record")

	// ErrEncodingRecord is returned when an expense record cannot be
	// encoded into its document column form.
	ErrEncodingRecord = errors.New("failed to encode record")
)
