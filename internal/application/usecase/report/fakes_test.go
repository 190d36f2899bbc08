// Package report contains reporting and export use cases.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/domain/entity"
	domainerror "github.com/expense-control/backend/internal/domain/error"
)

// fakeStore is an in-memory test double backing both the transaction and
// category repository interfaces. Aggregates are computed by scanning, so the
// monthly and yearly roll-ups exercise the same arithmetic as the real store.
type fakeStore struct {
	transactions []*entity.Transaction
	categories   map[uuid.UUID]*entity.Category

	findErr error
	sumErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: make(map[uuid.UUID]*entity.Category),
	}
}

func (f *fakeStore) addCategory(category *entity.Category) {
	f.categories[category.ID] = category
}

func (f *fakeStore) addTransaction(txn *entity.Transaction) {
	f.transactions = append(f.transactions, txn)
}

func (f *fakeStore) matches(filter adapter.TransactionFilter, txn *entity.Transaction) bool {
	if txn.UserID != filter.UserID {
		return false
	}
	if filter.StartDate != nil && txn.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && txn.Date.After(*filter.EndDate) {
		return false
	}
	return true
}

func (f *fakeStore) Create(ctx context.Context, txn *entity.Transaction) error {
	f.transactions = append(f.transactions, txn)
	return nil
}

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	for _, txn := range f.transactions {
		if txn.ID == id {
			return &entity.TransactionWithCategory{Transaction: txn, Category: f.categories[txn.CategoryID]}, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeStore) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return &adapter.TransactionListResult{
		Transactions: []*entity.TransactionWithCategory{},
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   1,
	}, nil
}

func (f *fakeStore) FindByDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.TransactionWithCategory, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	result := []*entity.TransactionWithCategory{}
	for _, txn := range f.transactions {
		if txn.UserID != userID || txn.Date.Before(startDate) || txn.Date.After(endDate) {
			continue
		}
		result = append(result, &entity.TransactionWithCategory{
			Transaction: txn,
			Category:    f.categories[txn.CategoryID],
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Transaction.Date.After(result[j].Transaction.Date)
	})
	return result, nil
}

func (f *fakeStore) SumAmountByType(ctx context.Context, filter adapter.TransactionFilter, transactionType entity.TransactionType) (decimal.Decimal, error) {
	if f.sumErr != nil {
		return decimal.Zero, f.sumErr
	}
	total := decimal.Zero
	for _, txn := range f.transactions {
		if txn.Type == transactionType && f.matches(filter, txn) {
			total = total.Add(txn.Amount)
		}
	}
	return total, nil
}

func (f *fakeStore) GroupExpensesByCategory(ctx context.Context, filter adapter.TransactionFilter) ([]adapter.CategoryGroup, error) {
	totals := make(map[uuid.UUID]*adapter.CategoryGroup)
	for _, txn := range f.transactions {
		if txn.Type != entity.TransactionTypeExpense || !f.matches(filter, txn) {
			continue
		}
		group, ok := totals[txn.CategoryID]
		if !ok {
			group = &adapter.CategoryGroup{CategoryID: txn.CategoryID, Total: decimal.Zero}
			totals[txn.CategoryID] = group
		}
		group.Total = group.Total.Add(txn.Amount)
		group.Count++
	}
	result := make([]adapter.CategoryGroup, 0, len(totals))
	for _, group := range totals {
		result = append(result, *group)
	}
	return result, nil
}

func (f *fakeStore) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, txn := range f.transactions {
		if txn.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) Update(ctx context.Context, txn *entity.Transaction) error {
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// fakeCategoryRepo exposes the store's categories through the category
// repository interface.
type fakeCategoryRepo struct {
	store *fakeStore
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.store.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := f.store.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	result := []*entity.Category{}
	for _, category := range f.store.categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepo) FindByIDsAndOwner(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Category, error) {
	result := []*entity.Category{}
	for _, id := range ids {
		category, ok := f.store.categories[id]
		if ok && category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepo) ExistsByNameAndOwner(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, category := range f.store.categories {
		if category.UserID == userID && category.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	f.store.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.categories, id)
	return nil
}

// fakeUserRepo is an in-memory test double for adapter.UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) add(user *entity.User) {
	f.users[user.ID] = user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeRenderer is a test double for adapter.ReportRenderer that records the
// document it was asked to render.
type fakeRenderer struct {
	content []byte
	err     error
	lastDoc adapter.ReportDocument
	calls   int
}

func (f *fakeRenderer) RenderPDF(ctx context.Context, doc adapter.ReportDocument) ([]byte, error) {
	f.calls++
	f.lastDoc = doc
	if f.err != nil {
		return nil, f.err
	}
	return f.content, nil
}
