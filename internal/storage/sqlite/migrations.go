package sqlite

import "database/sql"

// schema sets up the database tables. It runs on startup to ensure they exist.
// Clerks must be created before bills due to the foreign key constraint.
const schema = `
CREATE TABLE IF NOT EXISTS clerks (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    clerk_id TEXT,
    clerk_name TEXT NOT NULL,
    model TEXT NOT NULL,
    discount INTEGER NOT NULL DEFAULT 0,
    preferred INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (clerk_id) REFERENCES clerks(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS bill_entries (
    bill_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    discount REAL NOT NULL,
    quantity INTEGER NOT NULL,
    PRIMARY KEY (bill_id, position),
    FOREIGN KEY (bill_id) REFERENCES bills(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_bills_clerk_id ON bills(clerk_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
