package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finly/finly/internal/model"
)

// CreateTransactionRequest represents the request body for creating a
// transaction. Owner fields are not accepted from the client.
type CreateTransactionRequest struct {
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	BankID         *string         `json:"bank_id,omitempty"`
	BankName       string          `json:"bank_name,omitempty"`
	Description    string          `json:"description,omitempty"`
	Attachment     string          `json:"attachment,omitempty"`
	InvestmentKind string          `json:"investment_kind,omitempty"`
	Investors      []string        `json:"investors,omitempty"`
}

// UpdateTransactionRequest represents a partial update. Absent fields
// are left untouched.
type UpdateTransactionRequest struct {
	Date           *string          `json:"date,omitempty"`
	Type           *string          `json:"type,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod  *string          `json:"payment_method,omitempty"`
	BankID         *string          `json:"bank_id,omitempty"`
	BankName       *string          `json:"bank_name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Attachment     *string          `json:"attachment,omitempty"`
	InvestmentKind *string          `json:"investment_kind,omitempty"`
	Investors      *[]string        `json:"investors,omitempty"`
}

// BulkDeleteRequest represents the body for bulk transaction deletion.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkCategoryRequest represents the body for bulk re-categorization.
type BulkCategoryRequest struct {
	IDs      []string `json:"ids"`
	Category string   `json:"category"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	OwnerName      string          `json:"owner_name"`
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	BankID         *string         `json:"bank_id,omitempty"`
	BankName       string          `json:"bank_name,omitempty"`
	Description    string          `json:"description,omitempty"`
	Attachment     string          `json:"attachment,omitempty"`
	InvestmentKind string          `json:"investment_kind"`
	Investors      []string        `json:"investors,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToTransactionResponse maps a transaction entity to its API shape.
func ToTransactionResponse(tx *model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             tx.ID,
		OwnerID:        tx.OwnerID,
		OwnerName:      tx.OwnerName,
		Date:           tx.Date,
		Type:           string(tx.Type),
		Category:       tx.Category,
		Amount:         tx.Amount,
		PaymentMethod:  tx.PaymentMethod,
		BankID:         tx.BankID,
		BankName:       tx.BankName,
		Description:    tx.Description,
		Attachment:     tx.Attachment,
		InvestmentKind: string(tx.InvestmentKind),
		Investors:      tx.Investors,
		CreatedAt:      tx.CreatedAt,
		UpdatedAt:      tx.UpdatedAt,
	}
}

// ToTransactionListResponse maps a list of transactions to API shapes.
func ToTransactionListResponse(txs []*model.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		result = append(result, ToTransactionResponse(tx))
	}
	return result
}
