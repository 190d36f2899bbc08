// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-control/backend/internal/domain/entity"
	"github.com/expense-control/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// A single pooled connection keeps every query on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

// seedUser inserts a user and returns it.
func seedUser(t *testing.T, db *gorm.DB, name, email string) *entity.User {
	t.Helper()

	user := entity.NewUser(name, email, "hash")
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// seedCategory inserts a category for the user and returns it.
func seedCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *entity.Category {
	t.Helper()

	category := entity.NewCategory(userID, name, entity.DefaultCategoryColor, "")
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

// seedTransaction inserts a transaction and returns it.
func seedTransaction(t *testing.T, db *gorm.DB, userID, categoryID uuid.UUID, date time.Time, description string, amount float64, txnType entity.TransactionType) *entity.Transaction {
	t.Helper()

	txn := entity.NewTransaction(userID, date, description, decimal.NewFromFloat(amount), txnType, categoryID)
	if err := db.Create(model.TransactionFromEntity(txn)).Error; err != nil {
		t.Fatalf("failed to seed transaction %q: %v", description, err)
	}
	return txn
}
