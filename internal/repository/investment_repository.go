package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/itsdelka001/steam-investment-backend/internal/model"
	"github.com/shopspring/decimal"
)

// InvestmentRepository provides data access methods for the investment table
// and its attached commission entries.
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

const investmentColumns = `
	id, name, market_hash_name, count, buy_price, buy_currency, current_price,
	category, bought_date, sold, sell_price, sell_date, image, created_at
`

// GetAll retrieves every investment, oldest purchase first, with commission
// entries attached in display order.
func (r *InvestmentRepository) GetAll() ([]model.Investment, error) {
	rows, err := r.db.Query(`
		SELECT ` + investmentColumns + `
		FROM investment
		ORDER BY bought_date ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	if err := r.attachCommissions(investments); err != nil {
		return nil, err
	}

	return investments, nil
}

// GetUnsold retrieves all active (non-sold) investments. Used by the bulk
// price sweep; commissions are attached for consistency with GetAll.
func (r *InvestmentRepository) GetUnsold() ([]model.Investment, error) {
	rows, err := r.db.Query(`
		SELECT ` + investmentColumns + `
		FROM investment
		WHERE sold = FALSE
		ORDER BY bought_date ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	if err := r.attachCommissions(investments); err != nil {
		return nil, err
	}

	return investments, nil
}

// GetByID retrieves a single investment with its commission entries.
// Returns sql.ErrNoRows if no investment matches.
func (r *InvestmentRepository) GetByID(id string) (model.Investment, error) {
	row := r.db.QueryRow(`
		SELECT `+investmentColumns+`
		FROM investment
		WHERE id = ?
	`, id)

	inv, err := scanInvestment(row)
	if err != nil {
		return model.Investment{}, err
	}

	investments := []model.Investment{inv}
	if err := r.attachCommissions(investments); err != nil {
		return model.Investment{}, err
	}

	return investments[0], nil
}

// Create inserts an investment and its commission entries in one transaction.
func (r *InvestmentRepository) Create(inv model.Investment) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(`
		INSERT INTO investment (
			id, name, market_hash_name, count, buy_price, buy_currency, current_price,
			category, bought_date, sold, sell_price, sell_date, image, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		inv.ID,
		inv.Name,
		inv.MarketHashName,
		inv.Count,
		decimalFloat(inv.BuyPrice),
		inv.BuyCurrency,
		nullableDecimal(inv.CurrentPrice),
		inv.Category,
		inv.BoughtDate.Format("2006-01-02"),
		inv.Sold,
		decimalFloat(inv.SellPrice),
		nullableDate(inv.SellDate),
		inv.Image,
		inv.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}

	for _, c := range inv.Commissions {
		if err := insertCommission(tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Update rewrites all mutable investment fields. Commission entries are
// managed separately through the commission repository.
func (r *InvestmentRepository) Update(inv model.Investment) error {
	result, err := r.db.Exec(`
		UPDATE investment
		SET name = ?, market_hash_name = ?, count = ?, buy_price = ?,
			buy_currency = ?, current_price = ?, category = ?, bought_date = ?,
			sold = ?, sell_price = ?, sell_date = ?, image = ?
		WHERE id = ?
	`,
		inv.Name,
		inv.MarketHashName,
		inv.Count,
		decimalFloat(inv.BuyPrice),
		inv.BuyCurrency,
		nullableDecimal(inv.CurrentPrice),
		inv.Category,
		inv.BoughtDate.Format("2006-01-02"),
		inv.Sold,
		decimalFloat(inv.SellPrice),
		nullableDate(inv.SellDate),
		inv.Image,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
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

// UpdateCurrentPrice sets the latest known market price (base currency, per
// unit) for an investment. Used by the price sweep and single lookups.
func (r *InvestmentRepository) UpdateCurrentPrice(id string, price decimal.Decimal) error {
	result, err := r.db.Exec(`UPDATE investment SET current_price = ? WHERE id = ?`,
		decimalFloat(price), id)
	if err != nil {
		return fmt.Errorf("failed to update current price: %w", err)
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

// Delete removes an investment; commission entries cascade.
func (r *InvestmentRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM investment WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
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

// attachCommissions loads commission entries for the given investments in
// one query and attaches them in display order.
func (r *InvestmentRepository) attachCommissions(investments []model.Investment) error {
	if len(investments) == 0 {
		return nil
	}

	index := make(map[string]int, len(investments))
	for i := range investments {
		investments[i].Commissions = []model.CommissionEntry{}
		index[investments[i].ID] = i
	}

	rows, err := r.db.Query(`
		SELECT id, investment_id, rate, note, position
		FROM commission
		ORDER BY investment_id, position ASC
	`)
	if err != nil {
		return fmt.Errorf("failed to query commission table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.CommissionEntry
		var rate float64
		if err := rows.Scan(&c.ID, &c.InvestmentID, &rate, &c.Note, &c.Position); err != nil {
			return fmt.Errorf("failed to scan commission table results: %w", err)
		}
		c.Rate = decimal.NewFromFloat(rate)

		if i, ok := index[c.InvestmentID]; ok {
			investments[i].Commissions = append(investments[i].Commissions, c)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating commission table: %w", err)
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvestment(row rowScanner) (model.Investment, error) {
	var inv model.Investment
	var buyPrice, sellPrice float64
	var currentPrice sql.NullFloat64
	var boughtDateStr, createdAtStr string
	var sellDateStr sql.NullString

	err := row.Scan(
		&inv.ID,
		&inv.Name,
		&inv.MarketHashName,
		&inv.Count,
		&buyPrice,
		&inv.BuyCurrency,
		&currentPrice,
		&inv.Category,
		&boughtDateStr,
		&inv.Sold,
		&sellPrice,
		&sellDateStr,
		&inv.Image,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Investment{}, err
	}
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to scan investment table results: %w", err)
	}

	inv.BuyPrice = decimal.NewFromFloat(buyPrice)
	inv.SellPrice = decimal.NewFromFloat(sellPrice)
	if currentPrice.Valid {
		price := decimal.NewFromFloat(currentPrice.Float64)
		inv.CurrentPrice = &price
	}

	inv.BoughtDate, err = ParseTime(boughtDateStr)
	if err != nil {
		return model.Investment{}, err
	}
	inv.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Investment{}, err
	}
	if sellDateStr.Valid && sellDateStr.String != "" {
		sellDate, err := ParseTime(sellDateStr.String)
		if err != nil {
			return model.Investment{}, err
		}
		inv.SellDate = &sellDate
	}

	return inv, nil
}

func decimalFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func nullableDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return decimalFloat(*d)
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
