package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS users (
    name         TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS expenses (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    description  TEXT NOT NULL,
    amount       TEXT NOT NULL,
    category     TEXT NOT NULL,
    user_name    TEXT NOT NULL REFERENCES users(name),
    date         TEXT
);

CREATE TABLE IF NOT EXISTS budgets (
    kind         TEXT NOT NULL,
    name         TEXT NOT NULL,
    spend_limit  TEXT NOT NULL,
    PRIMARY KEY (kind, name)
);

CREATE INDEX IF NOT EXISTS idx_expenses_user ON expenses(user_name);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`
