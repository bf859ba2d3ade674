package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/finly/finly/internal/auth"
	"github.com/finly/finly/internal/model"
	"github.com/finly/finly/internal/repository"
)

// ErrInvalidCardType indicates an unknown DEBIT/CREDIT value.
var ErrInvalidCardType = errors.New("invalid card type")

// BankStore is the persistence surface BankService needs.
// Every read and mutation is keyed by the owning user's id.
type BankStore interface {
	CreateBank(ctx context.Context, bank *model.Bank) error
	ListBanks(ctx context.Context, ownerID string) ([]*model.Bank, error)
	UpdateBank(ctx context.Context, ownerID, id string, changes repository.BankChanges) error
	DeleteBank(ctx context.Context, ownerID, id string) error
}

// BankService handles bank record operations scoped to a caller.
type BankService struct {
	store BankStore
}

// NewBankService creates a new BankService.
func NewBankService(store BankStore) *BankService {
	return &BankService{store: store}
}

// CreateBankInput defines input for creating a bank record.
type CreateBankInput struct {
	BankName   string
	HolderName string
	CardNumber string
	ExpiryDate string
	CardType   model.CardType
}

// Create records a new bank record owned by the caller.
func (s *BankService) Create(ctx context.Context, caller *auth.Identity, input CreateBankInput) (*model.Bank, error) {
	if !input.CardType.IsValid() {
		return nil, ErrInvalidCardType
	}

	now := time.Now()
	bank := &model.Bank{
		ID:         ulid.Make().String(),
		OwnerID:    caller.UserID,
		BankName:   input.BankName,
		HolderName: input.HolderName,
		CardNumber: input.CardNumber,
		ExpiryDate: input.ExpiryDate,
		CardType:   input.CardType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.CreateBank(ctx, bank); err != nil {
		return nil, fmt.Errorf("create bank: %w", err)
	}

	return bank, nil
}

// List returns the caller's bank records, newest first.
func (s *BankService) List(ctx context.Context, caller *auth.Identity) ([]*model.Bank, error) {
	return s.store.ListBanks(ctx, caller.UserID)
}

// Update applies partial changes to one of the caller's bank records.
// A foreign or missing id affects nothing and reports no error.
func (s *BankService) Update(ctx context.Context, caller *auth.Identity, id string, changes repository.BankChanges) error {
	if changes.CardType != nil && !changes.CardType.IsValid() {
		return ErrInvalidCardType
	}

	return s.store.UpdateBank(ctx, caller.UserID, id, changes)
}

// Delete removes one of the caller's bank records. Idempotent.
func (s *BankService) Delete(ctx context.Context, caller *auth.Identity, id string) error {
	return s.store.DeleteBank(ctx, caller.UserID, id)
}
