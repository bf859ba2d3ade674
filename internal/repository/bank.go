package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/finly/finly/internal/model"
)

// BankChanges holds the mutable fields of a bank record for partial
// updates. Nil fields are left untouched.
type BankChanges struct {
	BankName   *string
	HolderName *string
	CardNumber *string
	ExpiryDate *string
	CardType   *model.CardType
}

const bankColumns = `
	id, owner_id, bank_name, holder_name, card_number, expiry_date, card_type,
	created_at, updated_at
`

// CreateBank inserts a new bank record.
func (r *Repository) CreateBank(ctx context.Context, bank *model.Bank) error {
	query := `
		INSERT INTO banks (` + bankColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		bank.ID,
		bank.OwnerID,
		bank.BankName,
		bank.HolderName,
		bank.CardNumber,
		bank.ExpiryDate,
		bank.CardType,
		bank.CreatedAt,
		bank.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create bank: %w", err)
	}

	return nil
}

// ListBanks retrieves all bank records owned by ownerID, newest first.
func (r *Repository) ListBanks(ctx context.Context, ownerID string) ([]*model.Bank, error) {
	query := `
		SELECT ` + bankColumns + `
		FROM banks
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	defer rows.Close()

	var banks []*model.Bank
	for rows.Next() {
		bank, err := scanBank(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank: %w", err)
		}
		banks = append(banks, bank)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banks: %w", err)
	}

	return banks, nil
}

// UpdateBank applies the given changes to a bank record owned by
// ownerID. A non-existent or foreign id affects zero rows and is not an
// error.
func (r *Repository) UpdateBank(ctx context.Context, ownerID, id string, changes BankChanges) error {
	set := []string{"updated_at = now()"}
	args := []any{id, ownerID}
	argIndex := 3

	addSet := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if changes.BankName != nil {
		addSet("bank_name", *changes.BankName)
	}
	if changes.HolderName != nil {
		addSet("holder_name", *changes.HolderName)
	}
	if changes.CardNumber != nil {
		addSet("card_number", *changes.CardNumber)
	}
	if changes.ExpiryDate != nil {
		addSet("expiry_date", *changes.ExpiryDate)
	}
	if changes.CardType != nil {
		addSet("card_type", *changes.CardType)
	}

	query := fmt.Sprintf(`
		UPDATE banks
		SET %s
		WHERE id = $1 AND owner_id = $2
	`, strings.Join(set, ", "))

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update bank: %w", err)
	}

	return nil
}

// DeleteBank removes a bank record owned by ownerID.
// Deleting a missing or foreign id is a no-op.
func (r *Repository) DeleteBank(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM banks
		WHERE id = $1 AND owner_id = $2
	`

	if _, err := r.pool.Exec(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete bank: %w", err)
	}

	return nil
}

// scanBank scans a bank record from a pgx row.
func scanBank(row pgx.Row) (*model.Bank, error) {
	var bank model.Bank

	err := row.Scan(
		&bank.ID,
		&bank.OwnerID,
		&bank.BankName,
		&bank.HolderName,
		&bank.CardNumber,
		&bank.ExpiryDate,
		&bank.CardType,
		&bank.CreatedAt,
		&bank.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &bank, nil
}
