// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-control/backend/internal/application/usecase/transaction"
	"github.com/expense-control/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=EXPENSE INCOME"`
	CategoryID  string  `json:"category_id" binding:"required"`
}

// UpdateTransactionRequest represents the request body for a full transaction update.
type UpdateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=EXPENSE INCOME"`
	CategoryID  string  `json:"category_id" binding:"required"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  string                       `json:"category_id"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// CategoryExpenseResponse represents one category's expense aggregate.
type CategoryExpenseResponse struct {
	Category TransactionCategoryResponse `json:"category"`
	Total    string                      `json:"total"`
	Count    int                         `json:"count"`
}

// SummaryResponse represents the financial summary in API responses.
type SummaryResponse struct {
	TotalIncome        string                    `json:"total_income"`
	TotalExpenses      string                    `json:"total_expenses"`
	Balance            string                    `json:"balance"`
	ExpensesByCategory []CategoryExpenseResponse `json:"expenses_by_category"`
}

// ToTransactionResponse converts a TransactionWithCategory entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.TransactionWithCategory) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.Transaction.ID.String(),
		UserID:      txn.Transaction.UserID.String(),
		Date:        txn.Transaction.Date.Format("2006-01-02"),
		Description: txn.Transaction.Description,
		Amount:      txn.Transaction.Amount.String(),
		Type:        string(txn.Transaction.Type),
		CategoryID:  txn.Transaction.CategoryID.String(),
		CreatedAt:   txn.Transaction.CreatedAt,
		UpdatedAt:   txn.Transaction.UpdatedAt,
	}

	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    txn.Category.ID.String(),
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
		}
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}

// ToSummaryResponse converts a Summary entity to a SummaryResponse DTO.
func ToSummaryResponse(summary *entity.Summary) SummaryResponse {
	breakdown := make([]CategoryExpenseResponse, len(summary.ExpensesByCategory))
	for i, item := range summary.ExpensesByCategory {
		breakdown[i] = CategoryExpenseResponse{
			Category: TransactionCategoryResponse{
				ID:    item.Category.ID.String(),
				Name:  item.Category.Name,
				Color: item.Category.Color,
			},
			Total: item.Total.String(),
			Count: item.Count,
		}
	}

	return SummaryResponse{
		TotalIncome:        summary.TotalIncome.String(),
		TotalExpenses:      summary.TotalExpenses.String(),
		Balance:            summary.Balance.String(),
		ExpensesByCategory: breakdown,
	}
}
