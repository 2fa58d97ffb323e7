package store

import (
	"context"
	"time"

	"github.com/spendtrack/spendtrack-api/internal/domain"
)

// ExpenseUpdate carries the fields an update may change. Nil fields are
// left untouched; the update timestamp is always re-stamped.
type ExpenseUpdate struct {
	Description *string
	Amount      *int64
	Category    *domain.Category
}

// ExpenseStore defines the interface for expense data persistence.
type ExpenseStore interface {
	// Create saves a new expense to the store and assigns its ID.
	// Returns ErrUserNotFound if the owning user does not exist
	// (foreign key violation).
	Create(ctx context.Context, expense *domain.Expense) error

	// GetByID retrieves an expense by its unique ID. No ownership filter is
	// applied here; ownership checks happen in the caller.
	// Returns ErrExpenseNotFound if the expense does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Expense, error)

	// Update applies the supplied fields to an existing expense and
	// re-stamps its update timestamp. Returns the updated expense.
	// Returns ErrExpenseNotFound if the expense does not exist.
	Update(ctx context.Context, id int64, update ExpenseUpdate) (*domain.Expense, error)

	// Delete removes an expense from the store by its ID. Returns true if a
	// row existed and was removed, false otherwise. A second delete on the
	// same ID returns false, not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// ListByDateRange returns all expenses owned by userID whose update
	// timestamp falls within [start, end] inclusive, ordered by update
	// timestamp descending. Returns an empty slice if none match.
	ListByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]*domain.Expense, error)
}
