// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-control/backend/internal/application/adapter"
	"github.com/expense-control/backend/internal/domain/entity"
	domainerror "github.com/expense-control/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory test double for adapter.TransactionRepository.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction

	listResult     *adapter.TransactionListResult
	listErr        error
	lastFilter     adapter.TransactionFilter
	lastPagination adapter.TransactionPagination

	sums      map[entity.TransactionType]decimal.Decimal
	sumErr    error
	groups    []adapter.CategoryGroup
	groupsErr error

	countByCategory map[uuid.UUID]int64

	createErr error
	updateErr error
	deleteErr error
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions:    make(map[uuid.UUID]*entity.Transaction),
		sums:            make(map[entity.TransactionType]decimal.Decimal),
		countByCategory: make(map[uuid.UUID]int64),
	}
}

func (f *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.transactions[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	txn, ok := f.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return &entity.TransactionWithCategory{Transaction: txn}, nil
}

func (f *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	f.lastFilter = filter
	f.lastPagination = pagination
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return &adapter.TransactionListResult{
		Transactions: []*entity.TransactionWithCategory{},
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   1,
	}, nil
}

func (f *fakeTransactionRepo) FindByDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.TransactionWithCategory, error) {
	result := []*entity.TransactionWithCategory{}
	for _, txn := range f.transactions {
		if txn.UserID != userID {
			continue
		}
		if txn.Date.Before(startDate) || txn.Date.After(endDate) {
			continue
		}
		result = append(result, &entity.TransactionWithCategory{Transaction: txn})
	}
	return result, nil
}

func (f *fakeTransactionRepo) SumAmountByType(ctx context.Context, filter adapter.TransactionFilter, transactionType entity.TransactionType) (decimal.Decimal, error) {
	f.lastFilter = filter
	if f.sumErr != nil {
		return decimal.Zero, f.sumErr
	}
	return f.sums[transactionType], nil
}

func (f *fakeTransactionRepo) GroupExpensesByCategory(ctx context.Context, filter adapter.TransactionFilter) ([]adapter.CategoryGroup, error) {
	if f.groupsErr != nil {
		return nil, f.groupsErr
	}
	return f.groups, nil
}

func (f *fakeTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return f.countByCategory[categoryID], nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.transactions[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.transactions, id)
	return nil
}

// fakeCategoryRepo is an in-memory test double for adapter.CategoryRepository.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
	findErr    error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uuid.UUID]*entity.Category),
	}
}

func (f *fakeCategoryRepo) add(category *entity.Category) {
	f.categories[category.ID] = category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	category, ok := f.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	result := []*entity.Category{}
	for _, category := range f.categories {
		if category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepo) FindByIDsAndOwner(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]*entity.Category, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	result := []*entity.Category{}
	for _, id := range ids {
		category, ok := f.categories[id]
		if ok && category.UserID == userID {
			result = append(result, category)
		}
	}
	return result, nil
}

func (f *fakeCategoryRepo) ExistsByNameAndOwner(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, category := range f.categories {
		if category.UserID == userID && category.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}
