//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/finly/finly/internal/model"
	"github.com/finly/finly/internal/testutil"
)

func newRepoTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()

	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect database: %v", err)
	}
	t.Cleanup(repo.Close)

	return ctx, repo
}

func seedTestUser(t *testing.T, ctx context.Context, repo *Repository) *model.User {
	t.Helper()

	user := &model.User{
		ID:           ulid.Make().String(),
		Name:         "Integration",
		Email:        fmt.Sprintf("it-%s@example.com", ulid.Make().String()),
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$dGVzdA$dGVzdA",
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		// No FK cascade; each table is cleared explicitly.
		cleanupCtx := context.Background()
		_, _ = repo.Pool().Exec(cleanupCtx, "DELETE FROM transactions WHERE owner_id = $1", user.ID)
		_, _ = repo.Pool().Exec(cleanupCtx, "DELETE FROM banks WHERE owner_id = $1", user.ID)
		_, _ = repo.Pool().Exec(cleanupCtx, "DELETE FROM users WHERE id = $1", user.ID)
	})
	return user
}

func newTestTransaction(owner *model.User, date string) *model.Transaction {
	now := time.Now().UTC()
	return &model.Transaction{
		ID:             ulid.Make().String(),
		OwnerID:        owner.ID,
		OwnerName:      owner.Name,
		Date:           date,
		Type:           model.TransactionExpense,
		Category:       "integration",
		Amount:         decimal.RequireFromString("12.34"),
		PaymentMethod:  "card",
		InvestmentKind: model.InvestmentSingle,
		Investors:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestIntegrationUserRepository_DuplicateEmail(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := seedTestUser(t, ctx, repo)

	dup := &model.User{
		ID:           ulid.Make().String(),
		Name:         "Duplicate",
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	err := repo.CreateUser(ctx, dup)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got: %v", err)
	}
}

func TestIntegrationUserRepository_GetByEmail(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	user := seedTestUser(t, ctx, repo)

	retrieved, err := repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if retrieved.ID != user.ID {
		t.Errorf("ID mismatch: got %q, want %q", retrieved.ID, user.ID)
	}

	_, err = repo.GetUserByEmail(ctx, "nobody-"+user.Email)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationTransactionRepository_OwnerScoping(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	alice := seedTestUser(t, ctx, repo)
	bob := seedTestUser(t, ctx, repo)

	tx := newTestTransaction(alice, "2026-08-01")
	if err := repo.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	// Bob's update of Alice's transaction affects nothing.
	hijacked := "hijacked"
	if err := repo.UpdateTransaction(ctx, bob.ID, tx.ID, TransactionChanges{Category: &hijacked}); err != nil {
		t.Fatalf("foreign UpdateTransaction should not error: %v", err)
	}

	// Bob's delete of Alice's transaction affects nothing.
	if err := repo.DeleteTransaction(ctx, bob.ID, tx.ID); err != nil {
		t.Fatalf("foreign DeleteTransaction should not error: %v", err)
	}

	list, err := repo.ListTransactions(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(list))
	}
	if list[0].Category != "integration" {
		t.Errorf("category should be untouched, got %q", list[0].Category)
	}

	bobList, err := repo.ListTransactions(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListTransactions (bob) failed: %v", err)
	}
	if len(bobList) != 0 {
		t.Errorf("expected bob to see 0 transactions, got %d", len(bobList))
	}
}

func TestIntegrationTransactionRepository_ListOrdering(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	owner := seedTestUser(t, ctx, repo)

	for _, date := range []string{"2026-08-01", "2026-08-03", "2026-08-02"} {
		if err := repo.CreateTransaction(ctx, newTestTransaction(owner, date)); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	list, err := repo.ListTransactions(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(list))
	}

	want := []string{"2026-08-03", "2026-08-02", "2026-08-01"}
	for i, tx := range list {
		if tx.Date != want[i] {
			t.Errorf("position %d: got date %q, want %q", i, tx.Date, want[i])
		}
	}
}

func TestIntegrationTransactionRepository_BulkMixedOwnership(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	alice := seedTestUser(t, ctx, repo)
	bob := seedTestUser(t, ctx, repo)

	aliceTx := newTestTransaction(alice, "2026-08-01")
	bobTx := newTestTransaction(bob, "2026-08-01")
	for _, tx := range []*model.Transaction{aliceTx, bobTx} {
		if err := repo.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	ids := []string{aliceTx.ID, bobTx.ID, "missing"}
	if err := repo.UpdateTransactionsCategory(ctx, alice.ID, ids, "merged"); err != nil {
		t.Fatalf("UpdateTransactionsCategory failed: %v", err)
	}
	if err := repo.DeleteTransactions(ctx, bob.ID, ids); err != nil {
		t.Fatalf("DeleteTransactions failed: %v", err)
	}

	aliceList, err := repo.ListTransactions(ctx, alice.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(aliceList) != 1 || aliceList[0].Category != "merged" {
		t.Fatalf("expected alice's transaction re-categorized and intact, got %+v", aliceList)
	}

	bobList, err := repo.ListTransactions(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListTransactions (bob) failed: %v", err)
	}
	if len(bobList) != 0 {
		t.Errorf("expected bob's transaction deleted, got %d left", len(bobList))
	}
}

func TestIntegrationTransactionRepository_SurvivesOwnerDeletion(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	owner := seedTestUser(t, ctx, repo)

	tx := newTestTransaction(owner, "2026-08-01")
	if err := repo.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	// Deleting the owning user must not touch their records.
	if _, err := repo.Pool().Exec(ctx, "DELETE FROM users WHERE id = $1", owner.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	list, err := repo.ListTransactions(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected the transaction to survive owner deletion, got %d rows", len(list))
	}
	if list[0].ID != tx.ID {
		t.Errorf("expected transaction %s, got %s", tx.ID, list[0].ID)
	}
}

func TestIntegrationBankRepository_CRUD(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)

	owner := seedTestUser(t, ctx, repo)

	now := time.Now().UTC()
	bank := &model.Bank{
		ID:         ulid.Make().String(),
		OwnerID:    owner.ID,
		BankName:   "First National",
		HolderName: owner.Name,
		CardNumber: "4111 1111 1111 1111",
		ExpiryDate: "12/28",
		CardType:   model.CardDebit,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := repo.CreateBank(ctx, bank); err != nil {
		t.Fatalf("CreateBank failed: %v", err)
	}

	credit := model.CardCredit
	if err := repo.UpdateBank(ctx, owner.ID, bank.ID, BankChanges{CardType: &credit}); err != nil {
		t.Fatalf("UpdateBank failed: %v", err)
	}

	list, err := repo.ListBanks(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListBanks failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 bank, got %d", len(list))
	}
	if list[0].CardType != model.CardCredit {
		t.Errorf("expected card type updated, got %q", list[0].CardType)
	}
	if list[0].CardNumber != bank.CardNumber {
		t.Errorf("card number should round-trip verbatim, got %q", list[0].CardNumber)
	}

	if err := repo.DeleteBank(ctx, owner.ID, bank.ID); err != nil {
		t.Fatalf("DeleteBank failed: %v", err)
	}

	list, err = repo.ListBanks(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListBanks after delete failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected 0 banks after delete, got %d", len(list))
	}
}
