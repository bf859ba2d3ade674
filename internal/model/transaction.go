// Package model defines domain entities for the application.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income from expense entries.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// IsValid checks if the transaction type is a known value.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// InvestmentKind marks whether a transaction is individual or shared.
type InvestmentKind string

const (
	InvestmentSingle InvestmentKind = "SINGLE"
	InvestmentTeam   InvestmentKind = "TEAM"
)

// IsValid checks if the investment kind is a known value.
func (k InvestmentKind) IsValid() bool {
	return k == InvestmentSingle || k == InvestmentTeam
}

// Transaction represents a single income or expense entry.
// OwnerID and OwnerName are injected server-side at creation and never
// change afterwards; there is no transfer-of-ownership operation.
type Transaction struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	OwnerName      string          `json:"owner_name"`
	Date           string          `json:"date"` // opaque, stored as supplied
	Type           TransactionType `json:"type"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	BankID         *string         `json:"bank_id,omitempty"`
	BankName       string          `json:"bank_name,omitempty"`
	Description    string          `json:"description,omitempty"`
	Attachment     string          `json:"attachment,omitempty"`
	InvestmentKind InvestmentKind  `json:"investment_kind"`
	Investors      []string        `json:"investors,omitempty"` // used only when TEAM
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
