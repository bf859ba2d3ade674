// Package model defines domain entities for the application.
package model

import "time"

// CardType distinguishes debit from credit cards.
type CardType string

const (
	CardDebit  CardType = "DEBIT"
	CardCredit CardType = "CREDIT"
)

// IsValid checks if the card type is a known value.
func (c CardType) IsValid() bool {
	return c == CardDebit || c == CardCredit
}

// Bank represents a linked bank/card record.
// The card number is stored verbatim as supplied.
type Bank struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	BankName   string    `json:"bank_name"`
	HolderName string    `json:"holder_name"`
	CardNumber string    `json:"card_number"`
	ExpiryDate string    `json:"expiry_date"`
	CardType   CardType  `json:"card_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
