package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id              INTEGER NOT NULL,
    title                TEXT NOT NULL,
    category             TEXT NOT NULL,
    completed            INTEGER NOT NULL DEFAULT 0,
    end_date             TEXT,
    steps                TEXT NOT NULL DEFAULT '[]',
    created_at           TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);
`
