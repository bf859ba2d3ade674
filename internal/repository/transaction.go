package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/finly/finly/internal/model"
)

// TransactionChanges holds the mutable fields of a transaction for
// partial updates. Nil fields are left untouched.
type TransactionChanges struct {
	Date           *string
	Type           *model.TransactionType
	Category       *string
	Amount         *decimal.Decimal
	PaymentMethod  *string
	BankID         *string
	BankName       *string
	Description    *string
	Attachment     *string
	InvestmentKind *model.InvestmentKind
	Investors      *[]string
}

const transactionColumns = `
	id, owner_id, owner_name, date, type, category, amount, payment_method,
	bank_id, bank_name, description, attachment, investment_kind, investors,
	created_at, updated_at
`

// CreateTransaction inserts a new transaction.
func (r *Repository) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.pool.Exec(ctx, query,
		tx.ID,
		tx.OwnerID,
		tx.OwnerName,
		tx.Date,
		tx.Type,
		tx.Category,
		tx.Amount,
		tx.PaymentMethod,
		tx.BankID,
		tx.BankName,
		tx.Description,
		tx.Attachment,
		tx.InvestmentKind,
		pq.Array(tx.Investors),
		tx.CreatedAt,
		tx.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// ListTransactions retrieves all transactions owned by ownerID,
// newest date first.
func (r *Repository) ListTransactions(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// UpdateTransaction applies the given changes to a transaction owned by
// ownerID. A non-existent or foreign id affects zero rows and is not an
// error.
func (r *Repository) UpdateTransaction(ctx context.Context, ownerID, id string, changes TransactionChanges) error {
	set := []string{"updated_at = now()"}
	args := []any{id, ownerID}
	argIndex := 3

	addSet := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if changes.Date != nil {
		addSet("date", *changes.Date)
	}
	if changes.Type != nil {
		addSet("type", *changes.Type)
	}
	if changes.Category != nil {
		addSet("category", *changes.Category)
	}
	if changes.Amount != nil {
		addSet("amount", *changes.Amount)
	}
	if changes.PaymentMethod != nil {
		addSet("payment_method", *changes.PaymentMethod)
	}
	if changes.BankID != nil {
		addSet("bank_id", *changes.BankID)
	}
	if changes.BankName != nil {
		addSet("bank_name", *changes.BankName)
	}
	if changes.Description != nil {
		addSet("description", *changes.Description)
	}
	if changes.Attachment != nil {
		addSet("attachment", *changes.Attachment)
	}
	if changes.InvestmentKind != nil {
		addSet("investment_kind", *changes.InvestmentKind)
	}
	if changes.Investors != nil {
		addSet("investors", pq.Array(*changes.Investors))
	}

	query := fmt.Sprintf(`
		UPDATE transactions
		SET %s
		WHERE id = $1 AND owner_id = $2
	`, strings.Join(set, ", "))

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

// DeleteTransaction removes a transaction owned by ownerID.
// Deleting a missing or foreign id is a no-op.
func (r *Repository) DeleteTransaction(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM transactions
		WHERE id = $1 AND owner_id = $2
	`

	if _, err := r.pool.Exec(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

// DeleteTransactions removes the transactions in ids that belong to
// ownerID. Foreign ids in the batch are silently skipped.
func (r *Repository) DeleteTransactions(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		DELETE FROM transactions
		WHERE id = ANY($1) AND owner_id = $2
	`

	if _, err := r.pool.Exec(ctx, query, ids, ownerID); err != nil {
		return fmt.Errorf("failed to bulk delete transactions: %w", err)
	}

	return nil
}

// UpdateTransactionsCategory sets the category on the transactions in
// ids that belong to ownerID. Foreign ids in the batch are silently
// skipped.
func (r *Repository) UpdateTransactionsCategory(ctx context.Context, ownerID string, ids []string, category string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE transactions
		SET category = $1, updated_at = now()
		WHERE id = ANY($2) AND owner_id = $3
	`

	if _, err := r.pool.Exec(ctx, query, category, ids, ownerID); err != nil {
		return fmt.Errorf("failed to bulk update category: %w", err)
	}

	return nil
}

// scanTransaction scans a transaction from a pgx row.
func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	var tx model.Transaction
	var investors []string

	err := row.Scan(
		&tx.ID,
		&tx.OwnerID,
		&tx.OwnerName,
		&tx.Date,
		&tx.Type,
		&tx.Category,
		&tx.Amount,
		&tx.PaymentMethod,
		&tx.BankID,
		&tx.BankName,
		&tx.Description,
		&tx.Attachment,
		&tx.InvestmentKind,
		pq.Array(&investors),
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Investors = investors
	return &tx, nil
}
