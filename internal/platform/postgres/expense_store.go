package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/spendtrack/spendtrack-api/internal/domain"
	"github.com/spendtrack/spendtrack-api/internal/platform/logger"
	"github.com/spendtrack/spendtrack-api/internal/store"
)

// ExpenseStore implements the store.ExpenseStore interface
// using a PostgreSQL database as the storage backend.
type ExpenseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewExpenseStore creates a new PostgreSQL implementation of the ExpenseStore interface.
// It accepts a database connection or transaction that should be initialized
// and managed by the caller. If logger is nil, a default logger will be used.
func NewExpenseStore(db store.DBTX, logger *slog.Logger) *ExpenseStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ExpenseStore{
		db:     db,
		logger: logger.With(slog.String("component", "expense_store")),
	}
}

// Ensure ExpenseStore implements store.ExpenseStore interface
var _ store.ExpenseStore = (*ExpenseStore)(nil)

// Create implements store.ExpenseStore.Create
// It saves a new expense to the database and assigns the generated ID.
// Returns store.ErrUserNotFound if the owning user does not exist
// (foreign key violation).
func (s *ExpenseStore) Create(ctx context.Context, expense *domain.Expense) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := expense.Validate(); err != nil {
		log.Warn("expense validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", expense.UserID))
		return err
	}

	query := `
		INSERT INTO expenses (user_id, description, amount, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		expense.UserID,
		expense.Description,
		expense.Amount,
		expense.Category,
		expense.CreatedAt,
		expense.UpdatedAt,
	).Scan(&expense.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during expense creation",
				slog.String("error", err.Error()),
				slog.Int64("user_id", expense.UserID))
			return store.ErrUserNotFound
		}

		log.Error("failed to create expense",
			slog.String("error", err.Error()),
			slog.Int64("user_id", expense.UserID))
		return MapError(err)
	}

	log.Info("expense created successfully",
		slog.Int64("expense_id", expense.ID),
		slog.Int64("user_id", expense.UserID),
		slog.String("category", string(expense.Category)))
	return nil
}

// GetByID implements store.ExpenseStore.GetByID
// It retrieves an expense by its unique ID.
// Returns store.ErrExpenseNotFound if the expense does not exist.
func (s *ExpenseStore) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, description, amount, category, created_at, updated_at
		FROM expenses
		WHERE id = $1
	`

	expense, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("expense not found", slog.Int64("expense_id", id))
			return nil, store.ErrExpenseNotFound
		}
		log.Error("failed to get expense by ID",
			slog.String("error", err.Error()),
			slog.Int64("expense_id", id))
		return nil, MapError(err)
	}

	return expense, nil
}

// Update implements store.ExpenseStore.Update
// It applies only the supplied fields, re-stamps the update timestamp, and
// returns the updated row. Returns store.ErrExpenseNotFound if the expense
// does not exist.
func (s *ExpenseStore) Update(ctx context.Context, id int64, update store.ExpenseUpdate) (*domain.Expense, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updatedAt := time.Now().UTC()

	// COALESCE keeps unsupplied fields at their stored values, so a partial
	// update is a single round trip.
	query := `
		UPDATE expenses
		SET description = COALESCE($1, description),
		    amount      = COALESCE($2, amount),
		    category    = COALESCE($3, category),
		    updated_at  = $4
		WHERE id = $5
		RETURNING id, user_id, description, amount, category, created_at, updated_at
	`

	var category *string
	if update.Category != nil {
		c := string(*update.Category)
		category = &c
	}

	expense, err := scanExpense(s.db.QueryRowContext(
		ctx,
		query,
		update.Description,
		update.Amount,
		category,
		updatedAt,
		id,
	))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("expense not found for update", slog.Int64("expense_id", id))
			return nil, store.ErrExpenseNotFound
		}
		log.Error("failed to update expense",
			slog.String("error", err.Error()),
			slog.Int64("expense_id", id))
		return nil, MapError(err)
	}

	log.Info("expense updated successfully",
		slog.Int64("expense_id", id),
		slog.String("category", string(expense.Category)))
	return expense, nil
}

// Delete implements store.ExpenseStore.Delete
// Returns true if a row existed and was removed, false otherwise.
// Deleting an already-deleted expense is not an error.
func (s *ExpenseStore) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM expenses
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete expense",
			slog.String("error", err.Error()),
			slog.Int64("expense_id", id))
		return false, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("expense_id", id))
		return false, MapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("no expense to delete", slog.Int64("expense_id", id))
		return false, nil
	}

	log.Info("expense deleted successfully", slog.Int64("expense_id", id))
	return true, nil
}

// ListByDateRange implements store.ExpenseStore.ListByDateRange
// Both bounds are inclusive; results are ordered by update timestamp
// descending. Returns an empty slice if no expenses match.
func (s *ExpenseStore) ListByDateRange(
	ctx context.Context,
	userID int64,
	start, end time.Time,
) ([]*domain.Expense, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, description, amount, category, created_at, updated_at
		FROM expenses
		WHERE user_id = $1
		  AND updated_at >= $2
		  AND updated_at <= $3
		ORDER BY updated_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		log.Error("failed to query expenses by date range",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			log.Error("failed to scan expense row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if no expenses found
	if expenses == nil {
		expenses = []*domain.Expense{}
	}

	log.Debug("found expenses by date range",
		slog.Int64("user_id", userID),
		slog.Int("count", len(expenses)))
	return expenses, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var expense domain.Expense
	var category string

	err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Description,
		&expense.Amount,
		&category,
		&expense.CreatedAt,
		&expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	expense.Category = domain.Category(category)
	return &expense, nil
}
