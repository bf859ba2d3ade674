package testutil

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/finly/finly/internal/model"
	"github.com/finly/finly/internal/repository"
)

// MemStore is an in-memory store implementing the service store
// interfaces with the same owner-scoping semantics as the SQL
// repository. Used to test services and handlers without a database.
type MemStore struct {
	mu           sync.Mutex
	users        []*model.User
	transactions []*model.Transaction
	banks        []*model.Bank
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// CreateUser inserts a user, enforcing the unique email constraint.
func (s *MemStore) CreateUser(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrEmailExists
		}
	}

	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

// GetUserByEmail retrieves a user by email.
func (s *MemStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// ListUsers returns all users.
func (s *MemStore) ListUsers(_ context.Context) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

// CreateTransaction inserts a transaction.
func (s *MemStore) CreateTransaction(_ context.Context, tx *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *tx
	s.transactions = append(s.transactions, &clone)
	return nil
}

// ListTransactions returns ownerID's transactions, newest date first.
func (s *MemStore) ListTransactions(_ context.Context, ownerID string) ([]*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*model.Transaction
	for _, tx := range s.transactions {
		if tx.OwnerID == ownerID {
			clone := *tx
			result = append(result, &clone)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

// UpdateTransaction applies changes to a transaction if owned by ownerID.
func (s *MemStore) UpdateTransaction(_ context.Context, ownerID, id string, changes repository.TransactionChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.transactions {
		if tx.ID != id || tx.OwnerID != ownerID {
			continue
		}
		if changes.Date != nil {
			tx.Date = *changes.Date
		}
		if changes.Type != nil {
			tx.Type = *changes.Type
		}
		if changes.Category != nil {
			tx.Category = *changes.Category
		}
		if changes.Amount != nil {
			tx.Amount = *changes.Amount
		}
		if changes.PaymentMethod != nil {
			tx.PaymentMethod = *changes.PaymentMethod
		}
		if changes.BankID != nil {
			bankID := *changes.BankID
			tx.BankID = &bankID
		}
		if changes.BankName != nil {
			tx.BankName = *changes.BankName
		}
		if changes.Description != nil {
			tx.Description = *changes.Description
		}
		if changes.Attachment != nil {
			tx.Attachment = *changes.Attachment
		}
		if changes.InvestmentKind != nil {
			tx.InvestmentKind = *changes.InvestmentKind
		}
		if changes.Investors != nil {
			tx.Investors = slices.Clone(*changes.Investors)
		}
		return nil
	}

	// Missing or foreign id affects nothing, matching the SQL behavior
	return nil
}

// DeleteTransaction removes a transaction if owned by ownerID.
func (s *MemStore) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	return s.DeleteTransactions(ctx, ownerID, []string{id})
}

// DeleteTransactions removes the owned subset of ids.
func (s *MemStore) DeleteTransactions(_ context.Context, ownerID string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = slices.DeleteFunc(s.transactions, func(tx *model.Transaction) bool {
		return tx.OwnerID == ownerID && slices.Contains(ids, tx.ID)
	})
	return nil
}

// UpdateTransactionsCategory re-categorizes the owned subset of ids.
func (s *MemStore) UpdateTransactionsCategory(_ context.Context, ownerID string, ids []string, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.transactions {
		if tx.OwnerID == ownerID && slices.Contains(ids, tx.ID) {
			tx.Category = category
		}
	}
	return nil
}

// CreateBank inserts a bank record.
func (s *MemStore) CreateBank(_ context.Context, bank *model.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *bank
	s.banks = append(s.banks, &clone)
	return nil
}

// ListBanks returns ownerID's bank records, newest first.
func (s *MemStore) ListBanks(_ context.Context, ownerID string) ([]*model.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*model.Bank
	for _, b := range s.banks {
		if b.OwnerID == ownerID {
			clone := *b
			result = append(result, &clone)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

// UpdateBank applies changes to a bank record if owned by ownerID.
func (s *MemStore) UpdateBank(_ context.Context, ownerID, id string, changes repository.BankChanges) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.banks {
		if b.ID != id || b.OwnerID != ownerID {
			continue
		}
		if changes.BankName != nil {
			b.BankName = *changes.BankName
		}
		if changes.HolderName != nil {
			b.HolderName = *changes.HolderName
		}
		if changes.CardNumber != nil {
			b.CardNumber = *changes.CardNumber
		}
		if changes.ExpiryDate != nil {
			b.ExpiryDate = *changes.ExpiryDate
		}
		if changes.CardType != nil {
			b.CardType = *changes.CardType
		}
		return nil
	}

	return nil
}

// DeleteBank removes a bank record if owned by ownerID.
func (s *MemStore) DeleteBank(_ context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.banks = slices.DeleteFunc(s.banks, func(b *model.Bank) bool {
		return b.OwnerID == ownerID && b.ID == id
	})
	return nil
}
