package service

import (
	"context"
	"sort"
	"time"

	"github.com/spendtrack/spendtrack-api/internal/domain"
	"github.com/spendtrack/spendtrack-api/internal/store"
)

// fakeUserStore is an in-memory store.UserStore for service tests.
type fakeUserStore struct {
	users  map[int64]*domain.User
	nextID int64

	// createErr forces Create to fail when set.
	createErr error
}

var _ store.UserStore = (*fakeUserStore)(nil)

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*domain.User), nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	for id, user := range f.users {
		if user.Email == email {
			delete(f.users, id)
			return true, nil
		}
	}
	return false, nil
}

// fakeExpenseStore is an in-memory store.ExpenseStore for service tests.
// Timestamps on stored expenses may be overwritten by tests to simulate
// records updated in the past.
type fakeExpenseStore struct {
	expenses map[int64]*domain.Expense
	nextID   int64

	// knownUsers controls foreign-key behavior on Create.
	knownUsers map[int64]bool
}

var _ store.ExpenseStore = (*fakeExpenseStore)(nil)

func newFakeExpenseStore(userIDs ...int64) *fakeExpenseStore {
	known := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		known[id] = true
	}
	return &fakeExpenseStore{
		expenses:   make(map[int64]*domain.Expense),
		nextID:     1,
		knownUsers: known,
	}
}

func (f *fakeExpenseStore) Create(ctx context.Context, expense *domain.Expense) error {
	if !f.knownUsers[expense.UserID] {
		return store.ErrUserNotFound
	}
	expense.ID = f.nextID
	f.nextID++
	copied := *expense
	f.expenses[expense.ID] = &copied
	return nil
}

func (f *fakeExpenseStore) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	expense, ok := f.expenses[id]
	if !ok {
		return nil, store.ErrExpenseNotFound
	}
	copied := *expense
	return &copied, nil
}

func (f *fakeExpenseStore) Update(ctx context.Context, id int64, update store.ExpenseUpdate) (*domain.Expense, error) {
	expense, ok := f.expenses[id]
	if !ok {
		return nil, store.ErrExpenseNotFound
	}
	if update.Description != nil {
		expense.Description = *update.Description
	}
	if update.Amount != nil {
		expense.Amount = *update.Amount
	}
	if update.Category != nil {
		expense.Category = *update.Category
	}
	expense.UpdatedAt = time.Now().UTC()
	copied := *expense
	return &copied, nil
}

func (f *fakeExpenseStore) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.expenses[id]; !ok {
		return false, nil
	}
	delete(f.expenses, id)
	return true, nil
}

func (f *fakeExpenseStore) ListByDateRange(
	ctx context.Context,
	userID int64,
	start, end time.Time,
) ([]*domain.Expense, error) {
	result := []*domain.Expense{}
	for _, expense := range f.expenses {
		if expense.UserID != userID {
			continue
		}
		if expense.UpdatedAt.Before(start) || expense.UpdatedAt.After(end) {
			continue
		}
		copied := *expense
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

// setUpdatedAt backdates a stored expense for window tests.
func (f *fakeExpenseStore) setUpdatedAt(id int64, at time.Time) {
	if expense, ok := f.expenses[id]; ok {
		expense.UpdatedAt = at
	}
}
