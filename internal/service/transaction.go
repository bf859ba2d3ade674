package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/finly/finly/internal/auth"
	"github.com/finly/finly/internal/model"
	"github.com/finly/finly/internal/repository"
)

var (
	// ErrInvalidTransactionType indicates an unknown INCOME/EXPENSE value.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	// ErrInvalidInvestmentKind indicates an unknown SINGLE/TEAM value.
	ErrInvalidInvestmentKind = errors.New("invalid investment kind")
)

// TransactionStore is the persistence surface TransactionService needs.
// Every read and mutation is keyed by the owning user's id.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	ListTransactions(ctx context.Context, ownerID string) ([]*model.Transaction, error)
	UpdateTransaction(ctx context.Context, ownerID, id string, changes repository.TransactionChanges) error
	DeleteTransaction(ctx context.Context, ownerID, id string) error
	DeleteTransactions(ctx context.Context, ownerID string, ids []string) error
	UpdateTransactionsCategory(ctx context.Context, ownerID string, ids []string, category string) error
}

// TransactionService handles transaction operations scoped to a caller.
type TransactionService struct {
	store TransactionStore
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

// CreateTransactionInput defines input for creating a transaction.
// Owner fields are taken from the caller identity, never from the body.
type CreateTransactionInput struct {
	Date           string
	Type           model.TransactionType
	Category       string
	Amount         decimal.Decimal
	PaymentMethod  string
	BankID         *string
	BankName       string
	Description    string
	Attachment     string
	InvestmentKind model.InvestmentKind
	Investors      []string
}

// Create records a new transaction owned by the caller.
func (s *TransactionService) Create(ctx context.Context, caller *auth.Identity, input CreateTransactionInput) (*model.Transaction, error) {
	if !input.Type.IsValid() {
		return nil, ErrInvalidTransactionType
	}

	kind := input.InvestmentKind
	if kind == "" {
		kind = model.InvestmentSingle
	}
	if !kind.IsValid() {
		return nil, ErrInvalidInvestmentKind
	}

	now := time.Now()
	tx := &model.Transaction{
		ID:             ulid.Make().String(),
		OwnerID:        caller.UserID,
		OwnerName:      caller.Name,
		Date:           input.Date,
		Type:           input.Type,
		Category:       input.Category,
		Amount:         input.Amount,
		PaymentMethod:  input.PaymentMethod,
		BankID:         input.BankID,
		BankName:       input.BankName,
		Description:    input.Description,
		Attachment:     input.Attachment,
		InvestmentKind: kind,
		Investors:      input.Investors,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return tx, nil
}

// List returns the caller's transactions, newest date first.
func (s *TransactionService) List(ctx context.Context, caller *auth.Identity) ([]*model.Transaction, error) {
	return s.store.ListTransactions(ctx, caller.UserID)
}

// Update applies partial changes to one of the caller's transactions.
// A foreign or missing id affects nothing and reports no error.
func (s *TransactionService) Update(ctx context.Context, caller *auth.Identity, id string, changes repository.TransactionChanges) error {
	if changes.Type != nil && !changes.Type.IsValid() {
		return ErrInvalidTransactionType
	}
	if changes.InvestmentKind != nil && !changes.InvestmentKind.IsValid() {
		return ErrInvalidInvestmentKind
	}

	return s.store.UpdateTransaction(ctx, caller.UserID, id, changes)
}

// Delete removes one of the caller's transactions. Idempotent.
func (s *TransactionService) Delete(ctx context.Context, caller *auth.Identity, id string) error {
	return s.store.DeleteTransaction(ctx, caller.UserID, id)
}

// BulkDelete removes the caller-owned subset of ids. Foreign ids are
// silently skipped.
func (s *TransactionService) BulkDelete(ctx context.Context, caller *auth.Identity, ids []string) error {
	return s.store.DeleteTransactions(ctx, caller.UserID, ids)
}

// BulkSetCategory re-categorizes the caller-owned subset of ids.
// Foreign ids are silently skipped.
func (s *TransactionService) BulkSetCategory(ctx context.Context, caller *auth.Identity, ids []string, category string) error {
	return s.store.UpdateTransactionsCategory(ctx, caller.UserID, ids, category)
}
