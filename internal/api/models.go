package api

import "github.com/spendtrack/spendtrack-api/internal/domain"

// RegisterRequest is the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a signed JWT back to the client after a successful
// registration or login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateExpenseRequest is the payload for creating an expense. Amount is a
// pointer so that an explicit zero can be told apart from an absent field.
// Category is optional; unrecognized values are coerced to "others".
type CreateExpenseRequest struct {
	Description string `json:"description" validate:"required"`
	Amount      *int64 `json:"amount" validate:"required"`
	Category    string `json:"category"`
}

// UpdateExpenseRequest is the payload for replacing an expense's mutable
// fields. All three fields are required.
type UpdateExpenseRequest struct {
	Description string `json:"description" validate:"required"`
	Amount      *int64 `json:"amount" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

// ExpenseResponse is the client-facing projection of an expense. Ownership
// and timestamps stay server-side.
type ExpenseResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
}

// NewExpenseResponse builds the API projection of a domain expense.
func NewExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
	}
}

// NewExpenseListResponse converts a slice of domain expenses, preserving
// order. It always returns a non-nil slice so the JSON encoding is [] rather
// than null for empty results.
func NewExpenseListResponse(expenses []*domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, NewExpenseResponse(e))
	}
	return out
}
