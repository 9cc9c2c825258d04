package db

import (
	"database/sql"

	"github.com/walletapp/backend/models"
)

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the connection pool and makes sure the transactions table
// exists. A failure here must abort startup: the caller never serves traffic
// over a storage layer that could not initialize.
func NewStorage(connStr string) (*Storage, error) {

	db, err := sql.Open("postgres", connStr)

	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS transactions (
		id SERIAL PRIMARY KEY,
		user_id VARCHAR(100) NOT NULL,
		title VARCHAR(100) NOT NULL,
		amount DECIMAL(10, 2) NOT NULL,
		category VARCHAR(100) NOT NULL,
		created_at DATE NOT NULL DEFAULT CURRENT_DATE
	)`)

	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() {
	s.DB.Close()
}

// CreateTransaction inserts the row and fills in the assigned id and the
// database-defaulted created_at.
func (s *Storage) CreateTransaction(t *models.Transaction) error {
	return s.DB.QueryRow(
		"INSERT INTO transactions (user_id, title, amount, category) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		t.UserID, t.Title, t.Amount, t.Category,
	).Scan(&t.ID, &t.CreatedAt)
}

// GetTransactionsByUser returns the user's transactions, newest first.
// created_at is a DATE, so id breaks same-day ties (later inserts first).
func (s *Storage) GetTransactionsByUser(userID string) ([]models.Transaction, error) {
	rows, err := s.DB.Query(
		"SELECT id, user_id, title, amount, category, created_at FROM transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions = []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// DeleteTransaction removes the row and reports whether anything matched.
func (s *Storage) DeleteTransaction(id int) (bool, error) {
	var deletedID int
	err := s.DB.QueryRow("DELETE FROM transactions WHERE id = $1 RETURNING id", id).Scan(&deletedID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetSummary computes the three aggregate sums for a user in one statement.
// COALESCE turns the empty-user case into zeros; expense stays signed.
func (s *Storage) GetSummary(userID string) (*models.Summary, error) {
	var summary models.Summary
	err := s.DB.QueryRow(`SELECT
		COALESCE(SUM(amount), 0) AS balance,
		COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0) AS income,
		COALESCE(SUM(amount) FILTER (WHERE amount < 0), 0) AS expense
		FROM transactions WHERE user_id = $1`,
		userID,
	).Scan(&summary.Balance, &summary.Income, &summary.Expense)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
