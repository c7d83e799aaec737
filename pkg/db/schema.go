package db

const (
	// SchemaV1 defines version 1 of the archive schema for the 'archivedb' component.
	// Entry order is the rowid of the entries table; themes and distortions keep
	// their analyzer order through the position column.
	SchemaV1 = `
CREATE TABLE IF NOT EXISTS mindmirror_versions (
    component TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    date TEXT NOT NULL,
    primary_emotion VARCHAR(128) NOT NULL,
    secondary_emotion VARCHAR(128) NOT NULL DEFAULT '',
    intensity INTEGER NOT NULL CHECK (intensity BETWEEN 1 AND 10),
    valence VARCHAR(16) NOT NULL CHECK (valence IN ('positive', 'negative', 'neutral')),
    has_distortions BOOLEAN NOT NULL DEFAULT FALSE,
    archived_at REAL DEFAULT (unixepoch())
);

CREATE INDEX IF NOT EXISTS idx_entries_primary_emotion ON entries(primary_emotion);

CREATE TABLE IF NOT EXISTS entry_themes (
    entry_id TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    name VARCHAR(256) NOT NULL,
    weight INTEGER NOT NULL,
    occurrences INTEGER NOT NULL CHECK (occurrences >= 0),
    PRIMARY KEY (entry_id, position)
);

CREATE INDEX IF NOT EXISTS idx_entry_themes_name ON entry_themes(name);

CREATE TABLE IF NOT EXISTS entry_distortions (
    entry_id TEXT NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    type VARCHAR(256) NOT NULL,
    description TEXT NOT NULL,
    examples TEXT NOT NULL DEFAULT '[]',
    PRIMARY KEY (entry_id, position)
);
`
)
