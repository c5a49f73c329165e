package repository

import (
	"database/sql"
	"fmt"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/shopspring/decimal"
)

// CommissionRepository provides data access methods for the commission table.
type CommissionRepository struct {
	db *sql.DB
}

// NewCommissionRepository creates a new CommissionRepository with the provided database connection.
func NewCommissionRepository(db *sql.DB) *CommissionRepository {
	return &CommissionRepository{db: db}
}

// GetByID retrieves a single commission entry.
// Returns sql.ErrNoRows if no entry matches.
func (r *CommissionRepository) GetByID(id string) (model.CommissionEntry, error) {
	var c model.CommissionEntry
	var rate float64

	err := r.db.QueryRow(`
		SELECT id, investment_id, rate, note, position
		FROM commission
		WHERE id = ?
	`, id).Scan(&c.ID, &c.InvestmentID, &rate, &c.Note, &c.Position)
	if err == sql.ErrNoRows {
		return model.CommissionEntry{}, err
	}
	if err != nil {
		return model.CommissionEntry{}, fmt.Errorf("failed to scan commission table results: %w", err)
	}

	c.Rate = decimal.NewFromFloat(rate)
	return c, nil
}

// Create inserts a commission entry at the end of its investment's display order.
func (r *CommissionRepository) Create(c model.CommissionEntry) error {
	return insertCommission(r.db, c)
}

// Update rewrites the rate and note of a commission entry.
func (r *CommissionRepository) Update(c model.CommissionEntry) error {
	result, err := r.db.Exec(`UPDATE commission SET rate = ?, note = ? WHERE id = ?`,
		decimalFloat(c.Rate), c.Note, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update commission: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a commission entry.
func (r *CommissionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM commission WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete commission: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// execer covers *sql.DB and *sql.Tx so investment creation can seed
// commissions inside its transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertCommission(e execer, c model.CommissionEntry) error {
	_, err := e.Exec(`
		INSERT INTO commission (id, investment_id, rate, note, position)
		VALUES (?, ?, ?, ?, (
			SELECT COALESCE(MAX(position), -1) + 1 FROM commission WHERE investment_id = ?
		))
	`, c.ID, c.InvestmentID, decimalFloat(c.Rate), c.Note, c.InvestmentID)
	if err != nil {
		return fmt.Errorf("failed to insert commission: %w", err)
	}
	return nil
}
