package dto

import (
	"time"

	"github.com/finly/finly/internal/model"
)

// CreateBankRequest represents the request body for creating a bank
// record.
type CreateBankRequest struct {
	BankName   string `json:"bank_name"`
	HolderName string `json:"holder_name"`
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CardType   string `json:"card_type"`
}

// UpdateBankRequest represents a partial update. Absent fields are left
// untouched.
type UpdateBankRequest struct {
	BankName   *string `json:"bank_name,omitempty"`
	HolderName *string `json:"holder_name,omitempty"`
	CardNumber *string `json:"card_number,omitempty"`
	ExpiryDate *string `json:"expiry_date,omitempty"`
	CardType   *string `json:"card_type,omitempty"`
}

// BankResponse represents a bank record in API responses.
type BankResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	BankName   string    `json:"bank_name"`
	HolderName string    `json:"holder_name"`
	CardNumber string    `json:"card_number"`
	ExpiryDate string    `json:"expiry_date"`
	CardType   string    `json:"card_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToBankResponse maps a bank entity to its API shape.
func ToBankResponse(bank *model.Bank) BankResponse {
	return BankResponse{
		ID:         bank.ID,
		OwnerID:    bank.OwnerID,
		BankName:   bank.BankName,
		HolderName: bank.HolderName,
		CardNumber: bank.CardNumber,
		ExpiryDate: bank.ExpiryDate,
		CardType:   string(bank.CardType),
		CreatedAt:  bank.CreatedAt,
		UpdatedAt:  bank.UpdatedAt,
	}
}

// ToBankListResponse maps a list of bank entities to API shapes.
func ToBankListResponse(banks []*model.Bank) []BankResponse {
	result := make([]BankResponse, 0, len(banks))
	for _, b := range banks {
		result = append(result, ToBankResponse(b))
	}
	return result
}
