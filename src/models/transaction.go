package models

import "time"

const (
	TransactionTypeExpense = "expense"
	TransactionTypeIncome  = "income"
)

// Transaction mirrors a row of the transactions table.
type Transaction struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Amount    int       `json:"amount"`
	Memo      *string   `json:"memo"`
	CreatedAt time.Time `json:"created_at"`
}
