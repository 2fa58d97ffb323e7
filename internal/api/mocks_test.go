package api

import (
	"context"
	"time"

	"github.com/spendtrack/spendtrack-api/internal/domain"
	"github.com/spendtrack/spendtrack-api/internal/store"
)

// MockUserService is a mock implementation of service.UserService for testing
type MockUserService struct {
	RegisterFn      func(ctx context.Context, name, email, password string) (string, error)
	LoginFn         func(ctx context.Context, email, password string) (string, error)
	FindByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	DeleteByEmailFn func(ctx context.Context, email string) (bool, error)
}

func (m *MockUserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, password)
	}
	return "", nil
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return "", nil
}

func (m *MockUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *MockUserService) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	if m.DeleteByEmailFn != nil {
		return m.DeleteByEmailFn(ctx, email)
	}
	return false, nil
}

// MockExpenseService is a mock implementation of service.ExpenseService for testing
type MockExpenseService struct {
	CreateFn              func(ctx context.Context, userID int64, description string, amount int64, category string) (*domain.Expense, error)
	FindFn                func(ctx context.Context, id int64) (*domain.Expense, error)
	UpdateFn              func(ctx context.Context, id int64, update store.ExpenseUpdate) (*domain.Expense, error)
	DeleteFn              func(ctx context.Context, id int64) (bool, error)
	ListByDateRangeFn     func(ctx context.Context, userID int64, start, end time.Time) ([]*domain.Expense, error)
	ListPastWeekFn        func(ctx context.Context, userID int64) ([]*domain.Expense, error)
	ListPastMonthFn       func(ctx context.Context, userID int64) ([]*domain.Expense, error)
	ListPastThreeMonthsFn func(ctx context.Context, userID int64) ([]*domain.Expense, error)
}

func (m *MockExpenseService) Create(
	ctx context.Context,
	userID int64,
	description string,
	amount int64,
	category string,
) (*domain.Expense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, description, amount, category)
	}
	return nil, nil
}

func (m *MockExpenseService) Find(ctx context.Context, id int64) (*domain.Expense, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, id)
	}
	return nil, nil
}

func (m *MockExpenseService) Update(
	ctx context.Context,
	id int64,
	update store.ExpenseUpdate,
) (*domain.Expense, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return nil, nil
}

func (m *MockExpenseService) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return false, nil
}

func (m *MockExpenseService) ListByDateRange(
	ctx context.Context,
	userID int64,
	start, end time.Time,
) ([]*domain.Expense, error) {
	if m.ListByDateRangeFn != nil {
		return m.ListByDateRangeFn(ctx, userID, start, end)
	}
	return nil, nil
}

func (m *MockExpenseService) ListPastWeek(ctx context.Context, userID int64) ([]*domain.Expense, error) {
	if m.ListPastWeekFn != nil {
		return m.ListPastWeekFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockExpenseService) ListPastMonth(ctx context.Context, userID int64) ([]*domain.Expense, error) {
	if m.ListPastMonthFn != nil {
		return m.ListPastMonthFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockExpenseService) ListPastThreeMonths(ctx context.Context, userID int64) ([]*domain.Expense, error) {
	if m.ListPastThreeMonthsFn != nil {
		return m.ListPastThreeMonthsFn(ctx, userID)
	}
	return nil, nil
}
