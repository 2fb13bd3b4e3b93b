package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profile (
    id                     INTEGER PRIMARY KEY CHECK (id = 1),
    monthly_income_cents   INTEGER NOT NULL DEFAULT 0,
    emergency_fund_cents   INTEGER NOT NULL DEFAULT 0,
    portfolio_cents        INTEGER NOT NULL DEFAULT 0,
    monthly_deposit_cents  INTEGER NOT NULL DEFAULT 0,
    passive_income_cents   INTEGER NOT NULL DEFAULT 0,
    updated_at             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS budget_items (
    name          TEXT PRIMARY KEY,
    amount_cents  INTEGER NOT NULL,
    kind          TEXT NOT NULL CHECK (kind IN ('need', 'want', 'savings'))
);

CREATE TABLE IF NOT EXISTS debts (
    name           TEXT PRIMARY KEY,
    balance_cents  INTEGER NOT NULL,
    apr_bps        INTEGER NOT NULL,
    payment_cents  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
    taken_at              TEXT PRIMARY KEY,
    monthly_income_cents  INTEGER NOT NULL,
    needs_cents           INTEGER NOT NULL,
    wants_cents           INTEGER NOT NULL,
    savings_cents         INTEGER NOT NULL,
    emergency_fund_cents  INTEGER NOT NULL,
    debt_balance_cents    INTEGER NOT NULL,
    debt_interest_cents   INTEGER NOT NULL,
    stage                 INTEGER NOT NULL
);
`
