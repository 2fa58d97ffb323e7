package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spendtrack/spendtrack-api/internal/domain"
	"github.com/spendtrack/spendtrack-api/internal/store"
)

// ExpenseService provides expense use cases scoped to a user ID supplied by
// the caller. Ownership checks on individual records happen in the handler.
type ExpenseService interface {
	// Create stores a new expense for the given user. Unrecognized
	// categories are coerced to domain.CategoryOthers, not rejected.
	// Returns store.ErrUserNotFound if the user does not exist.
	Create(ctx context.Context, userID int64, description string, amount int64, category string) (*domain.Expense, error)

	// Find retrieves an expense by ID.
	// Returns store.ErrExpenseNotFound if no expense matches.
	Find(ctx context.Context, id int64) (*domain.Expense, error)

	// Update applies the supplied fields and re-stamps the update timestamp.
	// Returns store.ErrExpenseNotFound if no expense matches.
	Update(ctx context.Context, id int64, update store.ExpenseUpdate) (*domain.Expense, error)

	// Delete removes an expense. Returns true if a row was removed; a second
	// delete of the same ID returns false, not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// ListByDateRange returns the user's expenses with update timestamps in
	// [start, end] inclusive, most recently updated first.
	ListByDateRange(ctx context.Context, userID int64, start, end time.Time) ([]*domain.Expense, error)

	// ListPastWeek returns the user's expenses updated in the last 7 days.
	ListPastWeek(ctx context.Context, userID int64) ([]*domain.Expense, error)

	// ListPastMonth returns the user's expenses updated in the last
	// calendar month. Month arithmetic follows time.AddDate; a start near
	// month-end may land on an unexpected day-of-month, which is accepted.
	ListPastMonth(ctx context.Context, userID int64) ([]*domain.Expense, error)

	// ListPastThreeMonths returns the user's expenses updated in the last
	// three calendar months.
	ListPastThreeMonths(ctx context.Context, userID int64) ([]*domain.Expense, error)
}

// ExpenseServiceImpl implements the ExpenseService interface.
type ExpenseServiceImpl struct {
	expenseStore store.ExpenseStore
	logger       *slog.Logger
	nowFunc      func() time.Time // Injectable for testing
}

// Ensure ExpenseServiceImpl implements ExpenseService interface
var _ ExpenseService = (*ExpenseServiceImpl)(nil)

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseStore store.ExpenseStore, logger *slog.Logger) *ExpenseServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseServiceImpl{
		expenseStore: expenseStore,
		logger:       logger.With("component", "expense_service"),
		nowFunc:      time.Now,
	}
}

// Create builds and stores a new expense for the user.
func (s *ExpenseServiceImpl) Create(
	ctx context.Context,
	userID int64,
	description string,
	amount int64,
	category string,
) (*domain.Expense, error) {
	expense, err := domain.NewExpense(userID, description, amount, category)
	if err != nil {
		s.logger.Debug("rejected expense with invalid data",
			"error", err,
			"user_id", userID)
		return nil, err
	}

	if err := s.expenseStore.Create(ctx, expense); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("expense creation for missing user",
				"user_id", userID)
		} else {
			s.logger.Error("failed to save expense",
				"error", err,
				"user_id", userID)
		}
		return nil, err
	}

	return expense, nil
}

// Find retrieves an expense by its primary identifier.
func (s *ExpenseServiceImpl) Find(ctx context.Context, id int64) (*domain.Expense, error) {
	expense, err := s.expenseStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrExpenseNotFound) {
			s.logger.Error("failed to retrieve expense",
				"error", err,
				"expense_id", id)
		}
		return nil, err
	}
	return expense, nil
}

// Update applies the supplied fields to an existing expense.
func (s *ExpenseServiceImpl) Update(ctx context.Context, id int64, update store.ExpenseUpdate) (*domain.Expense, error) {
	expense, err := s.expenseStore.Update(ctx, id, update)
	if err != nil {
		if !errors.Is(err, store.ErrExpenseNotFound) {
			s.logger.Error("failed to update expense",
				"error", err,
				"expense_id", id)
		}
		return nil, err
	}
	return expense, nil
}

// Delete removes an expense by ID.
func (s *ExpenseServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.expenseStore.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete expense",
			"error", err,
			"expense_id", id)
		return false, err
	}
	return deleted, nil
}

// ListByDateRange delegates to the store with caller-supplied bounds.
// No timezone normalization is performed; both bounds are compared in the
// representation the store uses.
func (s *ExpenseServiceImpl) ListByDateRange(
	ctx context.Context,
	userID int64,
	start, end time.Time,
) ([]*domain.Expense, error) {
	expenses, err := s.expenseStore.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		s.logger.Error("failed to list expenses by date range",
			"error", err,
			"user_id", userID)
		return nil, err
	}
	return expenses, nil
}

// ListPastWeek lists expenses updated within the last 7 days.
func (s *ExpenseServiceImpl) ListPastWeek(ctx context.Context, userID int64) ([]*domain.Expense, error) {
	now := s.nowFunc()
	return s.ListByDateRange(ctx, userID, now.AddDate(0, 0, -7), now)
}

// ListPastMonth lists expenses updated within the last calendar month.
func (s *ExpenseServiceImpl) ListPastMonth(ctx context.Context, userID int64) ([]*domain.Expense, error) {
	now := s.nowFunc()
	return s.ListByDateRange(ctx, userID, now.AddDate(0, -1, 0), now)
}

// ListPastThreeMonths lists expenses updated within the last three calendar months.
func (s *ExpenseServiceImpl) ListPastThreeMonths(ctx context.Context, userID int64) ([]*domain.Expense, error) {
	now := s.nowFunc()
	return s.ListByDateRange(ctx, userID, now.AddDate(0, -3, 0), now)
}
