// Package store provides SQLite-backed persistence for the stageward
// profile, budget, debts, and snapshot history.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/stageward/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant database location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "stageward", "stageward.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "stageward", "stageward.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Profile reads the stored profile. A fresh database yields a zero
// profile, not an error.
func (s *Store) Profile() (model.Profile, error) {
	var p model.Profile
	err := s.db.QueryRow(`SELECT
		monthly_income_cents, emergency_fund_cents, portfolio_cents,
		monthly_deposit_cents, passive_income_cents
		FROM profile WHERE id = 1`).Scan(
		&p.MonthlyIncome, &p.EmergencyFund, &p.Portfolio,
		&p.MonthlyDeposit, &p.DesiredPassiveIncome,
	)
	if err == sql.ErrNoRows {
		return model.Profile{}, nil
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("reading profile: %w", err)
	}
	return p, nil
}

// SaveProfile upserts the single profile row.
func (s *Store) SaveProfile(p model.Profile) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO profile
		(id, monthly_income_cents, emergency_fund_cents, portfolio_cents,
		 monthly_deposit_cents, passive_income_cents, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		p.MonthlyIncome, p.EmergencyFund, p.Portfolio,
		p.MonthlyDeposit, p.DesiredPassiveIncome,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Budget reads all budget items.
func (s *Store) Budget() (model.Budget, error) {
	rows, err := s.db.Query("SELECT name, amount_cents, kind FROM budget_items ORDER BY name")
	if err != nil {
		return model.Budget{}, fmt.Errorf("reading budget: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budget model.Budget
	for rows.Next() {
		var item model.BudgetItem
		var kind string
		if err := rows.Scan(&item.Name, &item.Amount, &kind); err != nil {
			return model.Budget{}, err
		}
		item.Kind, err = model.ParseItemKind(kind)
		if err != nil {
			return model.Budget{}, fmt.Errorf("budget item %q: %w", item.Name, err)
		}
		budget.Items = append(budget.Items, item)
	}
	return budget, rows.Err()
}

// UpsertBudgetItem inserts or replaces one budget item by name.
func (s *Store) UpsertBudgetItem(item model.BudgetItem) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO budget_items (name, amount_cents, kind)
		VALUES (?, ?, ?)`, item.Name, item.Amount, item.Kind.String())
	if err != nil {
		return fmt.Errorf("saving budget item %q: %w", item.Name, err)
	}
	return nil
}

// DeleteBudgetItem removes one item, reporting whether it existed.
func (s *Store) DeleteBudgetItem(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM budget_items WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("deleting budget item %q: %w", name, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Debts reads all debts.
func (s *Store) Debts() ([]model.Debt, error) {
	rows, err := s.db.Query("SELECT name, balance_cents, apr_bps, payment_cents FROM debts ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("reading debts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var d model.Debt
		if err := rows.Scan(&d.Name, &d.Balance, &d.APRBps, &d.Payment); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// UpsertDebt inserts or replaces one debt by name.
func (s *Store) UpsertDebt(d model.Debt) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO debts (name, balance_cents, apr_bps, payment_cents)
		VALUES (?, ?, ?, ?)`, d.Name, d.Balance, d.APRBps, d.Payment)
	if err != nil {
		return fmt.Errorf("saving debt %q: %w", d.Name, err)
	}
	return nil
}

// DeleteDebt removes one debt, reporting whether it existed.
func (s *Store) DeleteDebt(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM debts WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("deleting debt %q: %w", name, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// SaveSnapshot records a dated snapshot. Two snapshots in the same
// second replace each other, which is fine for a manual tool.
func (s *Store) SaveSnapshot(snap model.Snapshot) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO snapshots
		(taken_at, monthly_income_cents, needs_cents, wants_cents, savings_cents,
		 emergency_fund_cents, debt_balance_cents, debt_interest_cents, stage)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.TakenAt.UTC().Format(time.RFC3339),
		snap.MonthlyIncome, snap.Needs, snap.Wants, snap.Savings,
		snap.EmergencyFund, snap.DebtBalance, snap.DebtInterest, int(snap.Stage),
	)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Snapshots reads all snapshots, oldest first.
func (s *Store) Snapshots() ([]model.Snapshot, error) {
	rows, err := s.db.Query(`SELECT
		taken_at, monthly_income_cents, needs_cents, wants_cents, savings_cents,
		emergency_fund_cents, debt_balance_cents, debt_interest_cents, stage
		FROM snapshots ORDER BY taken_at`)
	if err != nil {
		return nil, fmt.Errorf("reading snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []model.Snapshot
	for rows.Next() {
		var snap model.Snapshot
		var takenAt string
		var stage int
		if err := rows.Scan(&takenAt, &snap.MonthlyIncome, &snap.Needs, &snap.Wants,
			&snap.Savings, &snap.EmergencyFund, &snap.DebtBalance, &snap.DebtInterest, &stage); err != nil {
			return nil, err
		}
		snap.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snap.Stage = model.Stage(stage)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// ReplaceAll transactionally replaces the profile, budget, and debts.
// Used by plan file import; snapshot history is preserved.
func (s *Store) ReplaceAll(p model.Profile, budget model.Budget, debts []model.Debt) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM budget_items"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM debts"); err != nil {
		return err
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO profile
		(id, monthly_income_cents, emergency_fund_cents, portfolio_cents,
		 monthly_deposit_cents, passive_income_cents, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		p.MonthlyIncome, p.EmergencyFund, p.Portfolio,
		p.MonthlyDeposit, p.DesiredPassiveIncome,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}

	for _, item := range budget.Items {
		if _, err := tx.Exec(`INSERT INTO budget_items (name, amount_cents, kind)
			VALUES (?, ?, ?)`, item.Name, item.Amount, item.Kind.String()); err != nil {
			return fmt.Errorf("importing budget item %q: %w", item.Name, err)
		}
	}
	for _, d := range debts {
		if _, err := tx.Exec(`INSERT INTO debts (name, balance_cents, apr_bps, payment_cents)
			VALUES (?, ?, ?, ?)`, d.Name, d.Balance, d.APRBps, d.Payment); err != nil {
			return fmt.Errorf("importing debt %q: %w", d.Name, err)
		}
	}

	return tx.Commit()
}
