package service

import (
	"context"
	"errors"
	"testing"

	"github.com/finly/finly/internal/auth"
	"github.com/finly/finly/internal/model"
	"github.com/finly/finly/internal/repository"
	"github.com/finly/finly/internal/testutil"
)

func seedBank(t *testing.T, svc *BankService, caller *auth.Identity) *model.Bank {
	t.Helper()
	bank, err := svc.Create(context.Background(), caller, CreateBankInput{
		BankName:   "First National",
		HolderName: caller.Name,
		CardNumber: "4111111111111111",
		ExpiryDate: "12/28",
		CardType:   model.CardDebit,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return bank
}

func TestBankService_Create_InjectsOwner(t *testing.T) {
	t.Parallel()
	svc := NewBankService(testutil.NewMemStore())

	bank := seedBank(t, svc, alice)

	if bank.ID == "" {
		t.Error("expected generated bank ID")
	}
	if bank.OwnerID != alice.UserID {
		t.Errorf("expected owner %s, got %s", alice.UserID, bank.OwnerID)
	}
}

func TestBankService_Create_InvalidCardType(t *testing.T) {
	t.Parallel()
	svc := NewBankService(testutil.NewMemStore())

	_, err := svc.Create(context.Background(), alice, CreateBankInput{
		BankName: "First National",
		CardType: model.CardType("PREPAID"),
	})
	if !errors.Is(err, ErrInvalidCardType) {
		t.Errorf("expected ErrInvalidCardType, got %v", err)
	}
}

func TestBankService_CrossTenantIsolation(t *testing.T) {
	t.Parallel()
	svc := NewBankService(testutil.NewMemStore())
	ctx := context.Background()

	aliceBank := seedBank(t, svc, alice)

	bobList, err := svc.List(ctx, bob)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(bobList) != 0 {
		t.Errorf("expected bob to see 0 banks, got %d", len(bobList))
	}

	hijack := "Hijacked Bank"
	if err := svc.Update(ctx, bob, aliceBank.ID, repository.BankChanges{BankName: &hijack}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := svc.Delete(ctx, bob, aliceBank.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	aliceList, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(aliceList) != 1 {
		t.Fatalf("expected alice's bank to survive, got %d records", len(aliceList))
	}
	if aliceList[0].BankName != "First National" {
		t.Errorf("expected bank name untouched, got %s", aliceList[0].BankName)
	}
}

func TestBankService_UpdateAndDelete_Owned(t *testing.T) {
	t.Parallel()
	svc := NewBankService(testutil.NewMemStore())
	ctx := context.Background()

	bank := seedBank(t, svc, alice)

	credit := model.CardCredit
	if err := svc.Update(ctx, alice, bank.ID, repository.BankChanges{CardType: &credit}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	list, _ := svc.List(ctx, alice)
	if list[0].CardType != model.CardCredit {
		t.Errorf("expected card type updated to CREDIT, got %s", list[0].CardType)
	}

	if err := svc.Delete(ctx, alice, bank.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	list, _ = svc.List(ctx, alice)
	if len(list) != 0 {
		t.Errorf("expected bank deleted, got %d records", len(list))
	}
}
