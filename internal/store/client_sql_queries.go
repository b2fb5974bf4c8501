package store

// createLocalSchema is executed on every open. CREATE TABLE IF NOT EXISTS
// keeps the call idempotent, so the client needs no migration tooling for
// its single-file database.
//
// The expense row stores the full record as a JSON document plus three
// columns the engine queries by: the primary key, the expense date as unix
// nanoseconds for ordering, and the synced flag. The synced column is
// authoritative; the copy inside the document is ignored on read.
const createLocalSchema = `
CREATE TABLE IF NOT EXISTS expenses (
    id        TEXT PRIMARY KEY,
    doc       TEXT    NOT NULL,
    date_unix INTEGER NOT NULL,
    synced    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_expenses_synced ON expenses (synced);

CREATE TABLE IF NOT EXISTS pending_deletes (
    id         TEXT PRIMARY KEY,
    deleted_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS prefs (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// expenses
const (
	putExpenseQuery = `INSERT INTO expenses (id, doc, date_unix, synced) VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET doc = excluded.doc, date_unix = excluded.date_unix, synced = excluded.synced`
	getExpenseQuery        = `SELECT doc, synced FROM expenses WHERE id = ?`
	getAllExpensesQuery    = `SELECT doc, synced FROM expenses ORDER BY date_unix DESC, id DESC`
	getUnsyncedQuery       = `SELECT doc, synced FROM expenses WHERE synced = 0 ORDER BY date_unix DESC, id DESC`
	markExpenseSyncedQuery = `UPDATE expenses SET synced = ? WHERE id = ?`
	deleteExpenseQuery     = `DELETE FROM expenses WHERE id = ?`
	containsExpenseQuery   = `SELECT EXISTS (SELECT 1 FROM expenses WHERE id = ?)`
)

// pending_deletes
const (
	addPendingDeleteQuery      = `INSERT INTO pending_deletes (id, deleted_at) VALUES (?, ?) ON CONFLICT (id) DO NOTHING`
	removePendingDeleteQuery   = `DELETE FROM pending_deletes WHERE id = ?`
	listPendingDeletesQuery    = `SELECT id, deleted_at FROM pending_deletes ORDER BY deleted_at`
	containsPendingDeleteQuery = `SELECT EXISTS (SELECT 1 FROM pending_deletes WHERE id = ?)`
)

// prefs
const (
	setPrefQuery = `INSERT INTO prefs (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	getPrefQuery = `SELECT value FROM prefs WHERE key = ?`
)
