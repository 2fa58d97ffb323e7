package domain

import (
	"fmt"
	"strings"
	"time"
)

// Common expense validation errors. Each wraps ErrValidation so callers can
// match the whole family with a single errors.Is check.
var (
	ErrEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrValidation)
	ErrMissingUserID    = fmt.Errorf("%w: expense must reference an owning user", ErrValidation)
)

// Category is a closed classification tag attached to an expense for
// reporting purposes. Values outside the set are coerced to CategoryOthers
// at the boundary rather than rejected.
type Category string

// The full set of recognized expense categories.
const (
	CategoryGroceries   Category = "groceries"
	CategoryLeisure     Category = "leisure"
	CategoryElectronics Category = "electronics"
	CategoryUtilities   Category = "utilities"
	CategoryClothing    Category = "clothing"
	CategoryHealth      Category = "health"
	CategoryOthers      Category = "others"
)

// Categories lists every recognized category. The order matches the CHECK
// constraint on the expenses table.
func Categories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryLeisure,
		CategoryElectronics,
		CategoryUtilities,
		CategoryClothing,
		CategoryHealth,
		CategoryOthers,
	}
}

// IsValid reports whether c is a member of the recognized category set.
func (c Category) IsValid() bool {
	switch c {
	case CategoryGroceries, CategoryLeisure, CategoryElectronics,
		CategoryUtilities, CategoryClothing, CategoryHealth, CategoryOthers:
		return true
	}
	return false
}

// NormalizeCategory converts free-form input into a member of the category
// set, falling back to CategoryOthers for anything unrecognized. Matching is
// case-insensitive so clients may send "Groceries" or "groceries".
func NormalizeCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.IsValid() {
		return c
	}
	return CategoryOthers
}

// Expense represents a single expense record owned by exactly one user.
// Amount is stored as an integer; the sign is not constrained (negative
// amounts are accepted as-is).
type Expense struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewExpense creates a new Expense owned by the given user, normalizing the
// category and stamping both timestamps with the current instant. The ID is
// assigned by the store on insert.
func NewExpense(userID int64, description string, amount int64, category string) (*Expense, error) {
	now := time.Now().UTC()
	expense := &Expense{
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Category:    NormalizeCategory(category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	return expense, nil
}

// Validate checks if the Expense has valid data.
// Returns an error if any field fails validation.
func (e *Expense) Validate() error {
	if e.UserID == 0 {
		return ErrMissingUserID
	}

	if e.Description == "" {
		return ErrEmptyDescription
	}

	if !e.Category.IsValid() {
		// NormalizeCategory should make this unreachable for boundary input;
		// it guards direct struct construction.
		return NewValidationError("category", "is not a recognized category", ErrValidation)
	}

	return nil
}
